package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a row of the payments table.
type Payment struct {
	ID         int64           `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Method     string          `db:"method"`
	ReceivedAt time.Time       `db:"received_at"`
	Reference  *string         `db:"reference"`
	InvoiceID  *int64          `db:"invoice_id"` // ON DELETE SET NULL
	AuditFields
}
