package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was received.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// Payment is money received, optionally settling an invoice.
type Payment struct {
	ID         int64           `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Reference  *string         `json:"reference"`
	InvoiceID  *int64          `json:"invoiceId"`
	AuditFields
}

type CreatePaymentInput struct {
	Amount     decimal.Decimal `json:"amount" validate:"positive"`
	Method     PaymentMethod   `json:"method" validate:"oneof=CASH CARD BANK_TRANSFER OTHER"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Reference  *string         `json:"reference" validate:"omitempty,max=100"`
	InvoiceID  *int64          `json:"invoiceId" validate:"omitempty,gt=0"`
}

type UpdatePaymentInput struct {
	Amount     *decimal.Decimal `json:"amount" validate:"omitempty,positive"`
	Method     *PaymentMethod   `json:"method" validate:"omitempty,oneof=CASH CARD BANK_TRANSFER OTHER"`
	ReceivedAt *time.Time       `json:"receivedAt"`
	Reference  Nullable[string] `json:"reference" validate:"omitempty,max=100"`
	InvoiceID  Nullable[int64]  `json:"invoiceId" validate:"omitempty,gt=0"`
}
