package memory

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type invoiceRepository struct {
	store *Store
}

var _ portsrepo.InvoiceRepositoryFacade = (*invoiceRepository)(nil)

func cloneInvoice(i domain.Invoice) domain.Invoice {
	i.Description = clonePtr(i.Description)
	return i
}

func invoiceID(i domain.Invoice) int64 { return i.ID }

func (r *invoiceRepository) numberTaken(number string, exceptID int64) bool {
	for id, inv := range r.store.invoices.rows {
		if id != exceptID && inv.Number == number {
			return true
		}
	}
	return false
}

func invoiceNumberConflict() error {
	return apperrors.NewConflictError("", map[string]any{"fields": []string{"number"}})
}

func invoiceDatesError() error {
	return apperrors.NewValidationError(apperrors.Issue{Path: "dueAt", Message: domain.MsgDueAfterIssue})
}

func (r *invoiceRepository) Create(_ context.Context, in domain.CreateInvoiceInput) (*domain.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.numberTaken(in.Number, 0) {
		return nil, invoiceNumberConflict()
	}

	now := r.store.timestamp()
	candidate := domain.Invoice{
		Number:      in.Number,
		Client:      in.Client,
		Amount:      in.Amount,
		Status:      in.Status,
		IssuedAt:    in.IssuedAt,
		DueAt:       in.DueAt,
		Description: clonePtr(in.Description),
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if candidate.Status == "" {
		candidate.Status = domain.InvoiceStatusPending
	}
	if !candidate.DatesValid() {
		return nil, invoiceDatesError()
	}

	created := r.store.invoices.insert(func(id int64) domain.Invoice {
		candidate.ID = id
		return candidate
	})
	created = cloneInvoice(created)
	return &created, nil
}

// List orders invoices by due date, earliest first.
func (r *invoiceRepository) List(_ context.Context) ([]domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.invoices.sorted(cloneInvoice, invoiceID, func(a, b domain.Invoice) int {
		return a.DueAt.Compare(b.DueAt)
	}), nil
}

func (r *invoiceRepository) GetByID(_ context.Context, id int64) (*domain.Invoice, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	inv, ok := r.store.invoices.rows[id]
	if !ok {
		return nil, nil
	}
	inv = cloneInvoice(inv)
	return &inv, nil
}

// Update applies in to the stored invoice. The date rule is checked on the
// merged row, so a payload moving only one date is still validated.
func (r *invoiceRepository) Update(_ context.Context, id int64, in domain.UpdateInvoiceInput) (*domain.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	inv, ok := r.store.invoices.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("")
	}

	if in.Number != nil {
		if r.numberTaken(*in.Number, id) {
			return nil, invoiceNumberConflict()
		}
		inv.Number = *in.Number
	}
	if in.Client != nil {
		inv.Client = *in.Client
	}
	if in.Amount != nil {
		inv.Amount = *in.Amount
	}
	if in.Status != nil {
		inv.Status = *in.Status
	}
	if in.IssuedAt != nil {
		inv.IssuedAt = *in.IssuedAt
	}
	if in.DueAt != nil {
		inv.DueAt = *in.DueAt
	}
	inv.Description = in.Description.Apply(clonePtr(inv.Description))
	if !inv.DatesValid() {
		return nil, invoiceDatesError()
	}

	inv.UpdatedAt = r.store.timestamp()
	r.store.invoices.rows[id] = inv
	inv = cloneInvoice(inv)
	return &inv, nil
}

// Delete removes the invoice and detaches its payments and credits.
func (r *invoiceRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.invoices.rows[id]; !ok {
		return apperrors.NewNotFoundError("")
	}
	delete(r.store.invoices.rows, id)

	for pid, p := range r.store.payments.rows {
		if p.InvoiceID != nil && *p.InvoiceID == id {
			p.InvoiceID = nil
			r.store.payments.rows[pid] = p
		}
	}
	for cid, c := range r.store.credits.rows {
		if c.InvoiceID != nil && *c.InvoiceID == id {
			c.InvoiceID = nil
			r.store.credits.rows[cid] = c
		}
	}
	return nil
}

func (r *invoiceRepository) MarkOverdue(_ context.Context, asOf time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var n int64
	now := r.store.timestamp()
	for id, inv := range r.store.invoices.rows {
		if inv.Status == domain.InvoiceStatusPending && inv.DueAt.Before(asOf) {
			inv.Status = domain.InvoiceStatusOverdue
			inv.UpdatedAt = now
			r.store.invoices.rows[id] = inv
			n++
		}
	}
	return n, nil
}
