package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID          int64                `json:"id"`
	Number      string               `json:"number"`
	Client      string               `json:"client"`
	Amount      decimal.Decimal      `json:"amount"`
	Status      domain.InvoiceStatus `json:"status"`
	IssuedAt    time.Time            `json:"issuedAt"`
	DueAt       time.Time            `json:"dueAt"`
	Description *string              `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Client:      inv.Client,
		Amount:      inv.Amount,
		Status:      inv.Status,
		IssuedAt:    inv.IssuedAt,
		DueAt:       inv.DueAt,
		Description: inv.Description,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}
