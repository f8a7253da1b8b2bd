package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ID         int64           `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Category   string          `db:"category"`
	Vendor     string          `db:"vendor"`
	IncurredAt time.Time       `db:"incurred_at"`
	Notes      *string         `db:"notes"`
	AuditFields
}
