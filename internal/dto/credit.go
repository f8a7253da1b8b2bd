package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreditResponse defines the data returned for a credit.
type CreditResponse struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	IssuedAt  time.Time       `json:"issuedAt"`
	InvoiceID *int64          `json:"invoiceId"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ToCreditResponse converts a domain.Credit to CreditResponse DTO
func ToCreditResponse(c domain.Credit) CreditResponse {
	return CreditResponse{
		ID:        c.ID,
		Amount:    c.Amount,
		Reason:    c.Reason,
		IssuedAt:  c.IssuedAt,
		InvoiceID: c.InvoiceID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
