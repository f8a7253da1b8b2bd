package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit is a row of the credits table.
type Credit struct {
	ID        int64           `db:"id"`
	Amount    decimal.Decimal `db:"amount"`
	Reason    string          `db:"reason"`
	IssuedAt  time.Time       `db:"issued_at"`
	InvoiceID *int64          `db:"invoice_id"` // ON DELETE SET NULL
	AuditFields
}
