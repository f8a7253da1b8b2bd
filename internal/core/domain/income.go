package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money earned from a source, independent of invoices.
type Income struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Source     string          `json:"source"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Notes      *string         `json:"notes"`
	AuditFields
}

type CreateIncomeInput struct {
	Amount     decimal.Decimal `json:"amount" validate:"positive"`
	Source     string          `json:"source" validate:"min=1"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Notes      *string         `json:"notes" validate:"omitempty,max=500"`
}

type UpdateIncomeInput struct {
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty,positive"`
	Source     *string          `json:"source" validate:"omitempty,min=1"`
	ReceivedAt *time.Time       `json:"receivedAt"`
	Notes      Nullable[string] `json:"notes" validate:"omitempty,max=500"`
}
