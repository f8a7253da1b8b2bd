package services

import (
	"context"
	"slices"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
)

var dictionaryEntries = []domain.DictionaryEntry{
	{
		Term:       "invoice",
		Definition: "A bill sent to a client listing the amount owed, when it was issued and when payment is due.",
		Category:   domain.DictionaryCategoryBilling,
		Related:    []string{"due date", "invoice status"},
	},
	{
		Term:       "invoice status",
		Definition: "Where an invoice is in its lifecycle: pending, paid, overdue or cancelled.",
		Category:   domain.DictionaryCategoryBilling,
		Related:    []string{"invoice", "overdue"},
	},
	{
		Term:       "due date",
		Definition: "The last day on which an invoice can be paid on time. It can never precede the issue date.",
		Category:   domain.DictionaryCategoryBilling,
		Related:    []string{"invoice", "overdue"},
	},
	{
		Term:       "overdue",
		Definition: "A pending invoice whose due date has passed without payment.",
		Category:   domain.DictionaryCategoryBilling,
		Related:    []string{"due date", "invoice status"},
	},
	{
		Term:       "payment",
		Definition: "Money received from a client, optionally applied against a specific invoice.",
		Category:   domain.DictionaryCategoryPayments,
		Related:    []string{"payment method", "invoice"},
	},
	{
		Term:       "payment method",
		Definition: "How a payment arrived: cash, card, bank transfer or another channel.",
		Category:   domain.DictionaryCategoryPayments,
		Related:    []string{"payment", "reference"},
	},
	{
		Term:       "reference",
		Definition: "A short identifier supplied with a payment, such as a transfer code or receipt number.",
		Category:   domain.DictionaryCategoryPayments,
		Related:    []string{"payment"},
	},
	{
		Term:       "credit",
		Definition: "An amount returned or forgiven to a client, for example after a refund or a billing correction.",
		Category:   domain.DictionaryCategoryPayments,
		Related:    []string{"invoice", "payment"},
	},
	{
		Term:       "expense",
		Definition: "Money spent with a vendor, recorded with a category for reporting.",
		Category:   domain.DictionaryCategoryBookkeeping,
		Related:    []string{"vendor", "income"},
	},
	{
		Term:       "vendor",
		Definition: "The business or person an expense was paid to.",
		Category:   domain.DictionaryCategoryBookkeeping,
		Related:    []string{"expense"},
	},
	{
		Term:       "income",
		Definition: "Money earned from a source that is tracked on its own rather than through invoices.",
		Category:   domain.DictionaryCategoryBookkeeping,
		Related:    []string{"expense", "payment"},
	},
}

type dictionaryService struct{}

// NewDictionaryService creates the glossary service.
func NewDictionaryService() portssvc.DictionarySvc {
	return dictionaryService{}
}

// ListEntries returns a copy of the glossary sorted by term.
func (dictionaryService) ListEntries(_ context.Context) []domain.DictionaryEntry {
	out := make([]domain.DictionaryEntry, len(dictionaryEntries))
	for i, e := range dictionaryEntries {
		e.Related = slices.Clone(e.Related)
		out[i] = e
	}
	slices.SortFunc(out, func(a, b domain.DictionaryEntry) int {
		return strings.Compare(a.Term, b.Term)
	})
	return out
}
