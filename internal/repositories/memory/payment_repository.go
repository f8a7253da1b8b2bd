package memory

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

type paymentRepository struct {
	store *Store
}

var _ portsrepo.PaymentRepositoryFacade = (*paymentRepository)(nil)

func clonePayment(p domain.Payment) domain.Payment {
	p.Reference = clonePtr(p.Reference)
	p.InvoiceID = clonePtr(p.InvoiceID)
	return p
}

// checkInvoiceRef must be called with the store lock held.
func (s *Store) checkInvoiceRef(invoiceID *int64) error {
	if invoiceID == nil {
		return nil
	}
	if _, ok := s.invoices.rows[*invoiceID]; !ok {
		return apperrors.NewInvalidRelationError("invoiceId", *invoiceID)
	}
	return nil
}

func (r *paymentRepository) Create(_ context.Context, in domain.CreatePaymentInput) (*domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.checkInvoiceRef(in.InvoiceID); err != nil {
		return nil, err
	}

	now := r.store.timestamp()
	created := r.store.payments.insert(func(id int64) domain.Payment {
		return domain.Payment{
			ID:          id,
			Amount:      in.Amount,
			Method:      in.Method,
			ReceivedAt:  in.ReceivedAt,
			Reference:   clonePtr(in.Reference),
			InvoiceID:   clonePtr(in.InvoiceID),
			AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
		}
	})
	created = clonePayment(created)
	return &created, nil
}

// List orders payments by receipt time, most recent first.
func (r *paymentRepository) List(_ context.Context) ([]domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.payments.sorted(clonePayment,
		func(p domain.Payment) int64 { return p.ID },
		newest(func(p domain.Payment) time.Time { return p.ReceivedAt }),
	), nil
}

func (r *paymentRepository) GetByID(_ context.Context, id int64) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.payments.rows[id]
	if !ok {
		return nil, nil
	}
	p = clonePayment(p)
	return &p, nil
}

func (r *paymentRepository) Update(_ context.Context, id int64, in domain.UpdatePaymentInput) (*domain.Payment, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.payments.rows[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("")
	}
	if in.InvoiceID.Set && in.InvoiceID.Valid {
		if err := r.store.checkInvoiceRef(&in.InvoiceID.Value); err != nil {
			return nil, err
		}
	}

	if in.Amount != nil {
		p.Amount = *in.Amount
	}
	if in.Method != nil {
		p.Method = *in.Method
	}
	if in.ReceivedAt != nil {
		p.ReceivedAt = *in.ReceivedAt
	}
	p.Reference = in.Reference.Apply(clonePtr(p.Reference))
	p.InvoiceID = in.InvoiceID.Apply(clonePtr(p.InvoiceID))
	p.UpdatedAt = r.store.timestamp()

	r.store.payments.rows[id] = p
	p = clonePayment(p)
	return &p, nil
}

func (r *paymentRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.payments.rows[id]; !ok {
		return apperrors.NewNotFoundError("")
	}
	delete(r.store.payments.rows, id)
	return nil
}
