package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a row of the incomes table.
type Income struct {
	ID         int64           `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	Source     string          `db:"source"`
	ReceivedAt time.Time       `db:"received_at"`
	Notes      *string         `db:"notes"`
	AuditFields
}
