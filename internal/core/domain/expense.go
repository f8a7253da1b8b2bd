package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent with a vendor.
type Expense struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Vendor     string          `json:"vendor"`
	IncurredAt time.Time       `json:"incurredAt"`
	Notes      *string         `json:"notes"`
	AuditFields
}

type CreateExpenseInput struct {
	Amount     decimal.Decimal `json:"amount" validate:"positive"`
	Category   string          `json:"category" validate:"min=1"`
	Vendor     string          `json:"vendor" validate:"min=1"`
	IncurredAt time.Time       `json:"incurredAt"`
	Notes      *string         `json:"notes" validate:"omitempty,max=500"`
}

type UpdateExpenseInput struct {
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty,positive"`
	Category   *string          `json:"category" validate:"omitempty,min=1"`
	Vendor     *string          `json:"vendor" validate:"omitempty,min=1"`
	IncurredAt *time.Time       `json:"incurredAt"`
	Notes      Nullable[string] `json:"notes" validate:"omitempty,max=500"`
}
