package schema

import "github.com/SscSPs/ledgerbook/internal/core/domain"

// Income parses income payloads.
var Income = Pair[domain.CreateIncomeInput, domain.UpdateIncomeInput]{
	Create: func(raw any) (domain.CreateIncomeInput, error) {
		return parseCreate(raw, func(r *Reader) domain.CreateIncomeInput {
			return domain.CreateIncomeInput{
				Amount:     r.RequiredDecimal("amount"),
				Source:     r.RequiredString("source"),
				ReceivedAt: r.RequiredTime("receivedAt"),
				Notes:      r.OptionalString("notes"),
			}
		})
	},
	Update: func(raw any) (domain.UpdateIncomeInput, error) {
		return parseUpdate(raw, func(r *Reader) domain.UpdateIncomeInput {
			return domain.UpdateIncomeInput{
				Amount:     r.DecimalPtr("amount"),
				Source:     r.StringPtr("source"),
				ReceivedAt: r.TimePtr("receivedAt"),
				Notes:      r.NullableString("notes"),
			}
		})
	},
}
