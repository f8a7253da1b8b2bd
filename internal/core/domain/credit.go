package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is an amount granted back to a client, optionally against an invoice.
type Credit struct {
	ID        int64           `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	IssuedAt  time.Time       `json:"issuedAt"`
	InvoiceID *int64          `json:"invoiceId"`
	AuditFields
}

type CreateCreditInput struct {
	Amount    decimal.Decimal `json:"amount" validate:"positive"`
	Reason    string          `json:"reason" validate:"min=1"`
	IssuedAt  time.Time       `json:"issuedAt"`
	InvoiceID *int64          `json:"invoiceId" validate:"omitempty,gt=0"`
}

type UpdateCreditInput struct {
	Amount    *decimal.Decimal `json:"amount" validate:"omitempty,positive"`
	Reason    *string          `json:"reason" validate:"omitempty,min=1"`
	IssuedAt  *time.Time       `json:"issuedAt"`
	InvoiceID Nullable[int64]  `json:"invoiceId" validate:"omitempty,gt=0"`
}
