package mapping

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToDomainIncome converts a model Income to a domain Income
func ToDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		ID:          m.ID,
		Amount:      m.Amount,
		Source:      m.Source,
		ReceivedAt:  m.ReceivedAt.UTC(),
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainIncomeSlice converts a slice of model Incomes to a slice of domain Incomes
func ToDomainIncomeSlice(ms []models.Income) []domain.Income {
	return toDomainSlice(ms, ToDomainIncome)
}
