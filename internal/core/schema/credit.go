package schema

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// Credit parses credit payloads.
var Credit = Pair[domain.CreateCreditInput, domain.UpdateCreditInput]{
	Create: func(raw any) (domain.CreateCreditInput, error) {
		return parseCreate(raw, func(r *Reader) domain.CreateCreditInput {
			return domain.CreateCreditInput{
				Amount:    r.RequiredDecimal("amount"),
				Reason:    r.RequiredString("reason"),
				IssuedAt:  r.RequiredTime("issuedAt"),
				InvoiceID: r.OptionalInt64("invoiceId"),
			}
		})
	},
	Update: func(raw any) (domain.UpdateCreditInput, error) {
		return parseUpdate(raw, func(r *Reader) domain.UpdateCreditInput {
			return domain.UpdateCreditInput{
				Amount:    r.DecimalPtr("amount"),
				Reason:    r.StringPtr("reason"),
				IssuedAt:  r.TimePtr("issuedAt"),
				InvoiceID: r.NullableInt64("invoiceId"),
			}
		})
	},
}
