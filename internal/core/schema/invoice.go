package schema

import (
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

const (
	// MsgDueAfterIssue is reported on dueAt when it precedes issuedAt.
	MsgDueAfterIssue = domain.MsgDueAfterIssue

	tagDueAfterIssue = "dueafterissue"
)

// Invoice parses invoice payloads.
var Invoice = Pair[domain.CreateInvoiceInput, domain.UpdateInvoiceInput]{
	Create: func(raw any) (domain.CreateInvoiceInput, error) {
		return parseCreate(raw, func(r *Reader) domain.CreateInvoiceInput {
			return domain.CreateInvoiceInput{
				Number:      r.RequiredString("number"),
				Client:      r.RequiredString("client"),
				Amount:      r.RequiredDecimal("amount"),
				Status:      domain.InvoiceStatus(r.DefaultString("status", string(domain.InvoiceStatusPending))),
				IssuedAt:    r.RequiredTime("issuedAt"),
				DueAt:       r.RequiredTime("dueAt"),
				Description: r.OptionalString("description"),
			}
		})
	},
	Update: func(raw any) (domain.UpdateInvoiceInput, error) {
		return parseUpdate(raw, func(r *Reader) domain.UpdateInvoiceInput {
			return domain.UpdateInvoiceInput{
				Number:      r.StringPtr("number"),
				Client:      r.StringPtr("client"),
				Amount:      r.DecimalPtr("amount"),
				Status:      enumPtr[domain.InvoiceStatus](r.StringPtr("status")),
				IssuedAt:    r.TimePtr("issuedAt"),
				DueAt:       r.TimePtr("dueAt"),
				Description: r.NullableString("description"),
			}
		})
	},
}

func init() {
	registerStructRule(invoiceDates, domain.CreateInvoiceInput{}, domain.UpdateInvoiceInput{})
}

// invoiceDates enforces dueAt >= issuedAt when both are known. An update that
// carries only one of them is checked by storage against the persisted row.
func invoiceDates(sl validator.StructLevel) {
	switch in := sl.Current().Interface().(type) {
	case domain.CreateInvoiceInput:
		if in.IssuedAt.IsZero() || in.DueAt.IsZero() {
			return
		}
		if in.DueAt.Before(in.IssuedAt) {
			sl.ReportError(in.DueAt, "dueAt", "DueAt", tagDueAfterIssue, "")
		}
	case domain.UpdateInvoiceInput:
		if in.IssuedAt == nil || in.DueAt == nil {
			return
		}
		if in.DueAt.Before(*in.IssuedAt) {
			sl.ReportError(in.DueAt, "dueAt", "DueAt", tagDueAfterIssue, "")
		}
	}
}
