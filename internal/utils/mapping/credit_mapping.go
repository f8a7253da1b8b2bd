package mapping

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToDomainCredit converts a model Credit to a domain Credit
func ToDomainCredit(m models.Credit) domain.Credit {
	return domain.Credit{
		ID:          m.ID,
		Amount:      m.Amount,
		Reason:      m.Reason,
		IssuedAt:    m.IssuedAt.UTC(),
		InvoiceID:   m.InvoiceID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditSlice converts a slice of model Credits to a slice of domain Credits
func ToDomainCreditSlice(ms []models.Credit) []domain.Credit {
	return toDomainSlice(ms, ToDomainCredit)
}
