package memory

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type expenseRepository struct {
	store *Store
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func cloneExpense(e domain.Expense) domain.Expense {
	e.Notes = clonePtr(e.Notes)
	return e
}

func (r *expenseRepository) Create(_ context.Context, in domain.CreateExpenseInput) (*domain.Expense, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	created := r.store.expenses.insert(func(id int64) domain.Expense {
		return domain.Expense{
			ID:          id,
			Amount:      in.Amount,
			Category:    in.Category,
			Vendor:      in.Vendor,
			IncurredAt:  in.IncurredAt,
			Notes:       clonePtr(in.Notes),
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	})
	created = cloneExpense(created)
	return &created, nil
}

// List orders expenses by when they were incurred, most recent first.
func (r *expenseRepository) List(_ context.Context) ([]domain.Expense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.expenses.sorted(cloneExpense,
		func(e domain.Expense) int64 { return e.ID },
		newest(func(e domain.Expense) time.Time { return e.IncurredAt }),
	), nil
}

func (r *expenseRepository) GetByID(_ context.Context, id int64) (*domain.Expense, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	e, ok := r.store.expenses.rows[id]
	if !ok {
		return nil, nil
	}
	e = cloneExpense(e)
	return &e, nil
}

func (r *expenseRepository) Update(_ context.Context, id int64, in domain.UpdateExpenseInput) (*domain.Expense, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	e, ok := r.store.expenses.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("")
	}

	if in.Amount != nil {
		e.Amount = *in.Amount
	}
	if in.Category != nil {
		e.Category = *in.Category
	}
	if in.Vendor != nil {
		e.Vendor = *in.Vendor
	}
	if in.IncurredAt != nil {
		e.IncurredAt = *in.IncurredAt
	}
	e.Notes = in.Notes.Apply(clonePtr(e.Notes))
	e.UpdatedAt = r.store.timestamp()

	r.store.expenses.rows[id] = e
	e = cloneExpense(e)
	return &e, nil
}

func (r *expenseRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.expenses.rows[id]; !ok {
		return apperrors.NewNotFoundError("")
	}
	delete(r.store.expenses.rows, id)
	return nil
}
