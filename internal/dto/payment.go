package dto

import (
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	ID         int64                `json:"id"`
	Amount     decimal.Decimal      `json:"amount"`
	Method     domain.PaymentMethod `json:"method"`
	ReceivedAt time.Time            `json:"receivedAt"`
	Reference  *string              `json:"reference"`
	InvoiceID  *int64               `json:"invoiceId"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		Amount:     p.Amount,
		Method:     p.Method,
		ReceivedAt: p.ReceivedAt,
		Reference:  p.Reference,
		InvoiceID:  p.InvoiceID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
