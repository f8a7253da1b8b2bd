package memory

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type creditRepository struct {
	store *Store
}

var _ portsrepo.CreditRepositoryFacade = (*creditRepository)(nil)

func cloneCredit(c domain.Credit) domain.Credit {
	c.InvoiceID = clonePtr(c.InvoiceID)
	return c
}

func (r *creditRepository) Create(_ context.Context, in domain.CreateCreditInput) (*domain.Credit, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.checkInvoiceRef(in.InvoiceID); err != nil {
		return nil, err
	}

	now := r.store.timestamp()
	created := r.store.credits.insert(func(id int64) domain.Credit {
		return domain.Credit{
			ID:          id,
			Amount:      in.Amount,
			Reason:      in.Reason,
			IssuedAt:    in.IssuedAt,
			InvoiceID:   clonePtr(in.InvoiceID),
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	})
	created = cloneCredit(created)
	return &created, nil
}

// List orders credits by issue time, most recent first.
func (r *creditRepository) List(_ context.Context) ([]domain.Credit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.credits.sorted(cloneCredit,
		func(c domain.Credit) int64 { return c.ID },
		newest(func(c domain.Credit) time.Time { return c.IssuedAt }),
	), nil
}

func (r *creditRepository) GetByID(_ context.Context, id int64) (*domain.Credit, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.credits.rows[id]
	if !ok {
		return nil, nil
	}
	c = cloneCredit(c)
	return &c, nil
}

func (r *creditRepository) Update(_ context.Context, id int64, in domain.UpdateCreditInput) (*domain.Credit, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.credits.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("")
	}
	if in.InvoiceID.Set && in.InvoiceID.Valid {
		if err := r.store.checkInvoiceRef(&in.InvoiceID.Value); err != nil {
			return nil, err
		}
	}

	if in.Amount != nil {
		c.Amount = *in.Amount
	}
	if in.Reason != nil {
		c.Reason = *in.Reason
	}
	if in.IssuedAt != nil {
		c.IssuedAt = *in.IssuedAt
	}
	c.InvoiceID = in.InvoiceID.Apply(clonePtr(c.InvoiceID))
	c.UpdatedAt = r.store.timestamp()

	r.store.credits.rows[id] = c
	c = cloneCredit(c)
	return &c, nil
}

func (r *creditRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.credits.rows[id]; !ok {
		return apperrors.NewNotFoundError("")
	}
	delete(r.store.credits.rows, id)
	return nil
}
