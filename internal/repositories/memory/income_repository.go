package memory

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type incomeRepository struct {
	store *Store
}

var _ portsrepo.IncomeRepositoryFacade = (*incomeRepository)(nil)

func cloneIncome(i domain.Income) domain.Income {
	i.Notes = clonePtr(i.Notes)
	return i
}

func (r *incomeRepository) Create(_ context.Context, in domain.CreateIncomeInput) (*domain.Income, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	created := r.store.incomes.insert(func(id int64) domain.Income {
		return domain.Income{
			ID:          id,
			Amount:      in.Amount,
			Source:      in.Source,
			ReceivedAt:  in.ReceivedAt,
			Notes:       clonePtr(in.Notes),
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	})
	created = cloneIncome(created)
	return &created, nil
}

// List orders incomes by receipt time, most recent first.
func (r *incomeRepository) List(_ context.Context) ([]domain.Income, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.incomes.sorted(cloneIncome,
		func(i domain.Income) int64 { return i.ID },
		newest(func(i domain.Income) time.Time { return i.ReceivedAt }),
	), nil
}

func (r *incomeRepository) GetByID(_ context.Context, id int64) (*domain.Income, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	i, ok := r.store.incomes.rows[id]
	if !ok {
		return nil, nil
	}
	i = cloneIncome(i)
	return &i, nil
}

func (r *incomeRepository) Update(_ context.Context, id int64, in domain.UpdateIncomeInput) (*domain.Income, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i, ok := r.store.incomes.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("")
	}

	if in.Amount != nil {
		i.Amount = *in.Amount
	}
	if in.Source != nil {
		i.Source = *in.Source
	}
	if in.ReceivedAt != nil {
		i.ReceivedAt = *in.ReceivedAt
	}
	i.Notes = in.Notes.Apply(clonePtr(i.Notes))
	i.UpdatedAt = r.store.timestamp()

	r.store.incomes.rows[id] = i
	i = cloneIncome(i)
	return &i, nil
}

func (r *incomeRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.incomes.rows[id]; !ok {
		return apperrors.NewNotFoundError("")
	}
	delete(r.store.incomes.rows, id)
	return nil
}
