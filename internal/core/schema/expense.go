package schema

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// Expense parses expense payloads.
var Expense = Pair[domain.CreateExpenseInput, domain.UpdateExpenseInput]{
	Create: func(raw any) (domain.CreateExpenseInput, error) {
		return parseCreate(raw, func(r *Reader) domain.CreateExpenseInput {
			return domain.CreateExpenseInput{
				Amount:     r.RequiredDecimal("amount"),
				Category:   r.RequiredString("category"),
				Vendor:     r.RequiredString("vendor"),
				IncurredAt: r.RequiredTime("incurredAt"),
				Notes:      r.OptionalString("notes"),
			}
		})
	},
	Update: func(raw any) (domain.UpdateExpenseInput, error) {
		return parseUpdate(raw, func(r *Reader) domain.UpdateExpenseInput {
			return domain.UpdateExpenseInput{
				Amount:     r.DecimalPtr("amount"),
				Category:   r.StringPtr("category"),
				Vendor:     r.StringPtr("vendor"),
				IncurredAt: r.TimePtr("incurredAt"),
				Notes:      r.NullableString("notes"),
			}
		})
	},
}
