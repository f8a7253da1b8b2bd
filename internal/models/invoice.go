package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a row of the invoices table.
type Invoice struct {
	ID          int64           `db:"id"`
	Number      string          `db:"number"`
	Client      string          `db:"client"`
	Amount      decimal.Decimal `db:"amount"` // NUMERIC(14,2)
	Status      string          `db:"status"`
	IssuedAt    time.Time       `db:"issued_at"`
	DueAt       time.Time       `db:"due_at"`
	Description *string         `db:"description"`
	AuditFields
}
