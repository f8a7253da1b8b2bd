package schema

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// Payment parses payment payloads.
var Payment = Pair[domain.CreatePaymentInput, domain.UpdatePaymentInput]{
	Create: func(raw any) (domain.CreatePaymentInput, error) {
		return parseCreate(raw, func(r *Reader) domain.CreatePaymentInput {
			return domain.CreatePaymentInput{
				Amount:     r.RequiredDecimal("amount"),
				Method:     domain.PaymentMethod(r.RequiredString("method")),
				ReceivedAt: r.RequiredTime("receivedAt"),
				Reference:  r.OptionalString("reference"),
				InvoiceID:  r.OptionalInt64("invoiceId"),
			}
		})
	},
	Update: func(raw any) (domain.UpdatePaymentInput, error) {
		return parseUpdate(raw, func(r *Reader) domain.UpdatePaymentInput {
			return domain.UpdatePaymentInput{
				Amount:     r.DecimalPtr("amount"),
				Method:     enumPtr[domain.PaymentMethod](r.StringPtr("method")),
				ReceivedAt: r.TimePtr("receivedAt"),
				Reference:  r.NullableString("reference"),
				InvoiceID:  r.NullableInt64("invoiceId"),
			}
		})
	},
}
