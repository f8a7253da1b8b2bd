package mapping

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		ID:          m.ID,
		Number:      m.Number,
		Client:      m.Client,
		Amount:      m.Amount,
		Status:      domain.InvoiceStatus(m.Status),
		IssuedAt:    m.IssuedAt.UTC(),
		DueAt:       m.DueAt.UTC(),
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	return toDomainSlice(ms, ToDomainInvoice)
}
