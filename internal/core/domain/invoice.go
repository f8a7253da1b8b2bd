package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// MsgDueAfterIssue is reported on dueAt when it precedes issuedAt.
const MsgDueAfterIssue = "dueAt must be on or after issuedAt"

// Invoice is a bill issued to a client. Number is unique across invoices.
type Invoice struct {
	ID          int64           `json:"id"`
	Number      string          `json:"number"`
	Client      string          `json:"client"`
	Amount      decimal.Decimal `json:"amount"`
	Status      InvoiceStatus   `json:"status"`
	IssuedAt    time.Time       `json:"issuedAt"`
	DueAt       time.Time       `json:"dueAt"`
	Description *string         `json:"description"`
	AuditFields
}

// DatesValid reports whether the due date is on or after the issue date.
func (i Invoice) DatesValid() bool {
	return !i.DueAt.Before(i.IssuedAt)
}

// CreateInvoiceInput is the normalized payload for creating an invoice.
type CreateInvoiceInput struct {
	Number      string          `json:"number" validate:"min=1"`
	Client      string          `json:"client" validate:"min=1"`
	Amount      decimal.Decimal `json:"amount" validate:"positive"`
	Status      InvoiceStatus   `json:"status" validate:"oneof=PENDING PAID OVERDUE CANCELLED"`
	IssuedAt    time.Time       `json:"issuedAt"`
	DueAt       time.Time       `json:"dueAt"`
	Description *string         `json:"description" validate:"omitempty,max=1000"`
}

// UpdateInvoiceInput is the normalized partial update of an invoice.
type UpdateInvoiceInput struct {
	Number      *string          `json:"number" validate:"omitempty,min=1"`
	Client      *string          `json:"client" validate:"omitempty,min=1"`
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,positive"`
	Status      *InvoiceStatus   `json:"status" validate:"omitempty,oneof=PENDING PAID OVERDUE CANCELLED"`
	IssuedAt    *time.Time       `json:"issuedAt"`
	DueAt       *time.Time       `json:"dueAt"`
	Description Nullable[string] `json:"description" validate:"omitempty,max=1000"`
}
