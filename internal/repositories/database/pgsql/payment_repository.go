package pgsql

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var paymentsTable = crudTable[models.Payment]{
	name:    "payments",
	columns: "id, amount, method, received_at, reference, invoice_id, created_at, updated_at",
	orderBy: "received_at DESC, id ASC",
}

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// Create inserts a payment after locking the referenced invoice, if any.
func (r *PgxPaymentRepository) Create(ctx context.Context, in domain.CreatePaymentInput) (*domain.Payment, error) {
	var cs changeSet
	cs.set("amount", in.Amount)
	cs.set("method", string(in.Method))
	cs.set("received_at", in.ReceivedAt)
	cs.set("reference", in.Reference)
	cs.set("invoice_id", in.InvoiceID)

	var m *models.Payment
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockInvoiceRef(ctx, tx, in.InvoiceID); err != nil {
			return err
		}
		var err error
		m, err = paymentsTable.insert(ctx, tx, cs)
		return err
	})
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPayment(*m)
	return &p, nil
}

func (r *PgxPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	ms, err := paymentsTable.list(ctx, r.Pool)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

func (r *PgxPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	m, err := paymentsTable.getByID(ctx, r.Pool, id)
	if err != nil || m == nil {
		return nil, err
	}
	p := mapping.ToDomainPayment(*m)
	return &p, nil
}

func (r *PgxPaymentRepository) Update(ctx context.Context, id int64, in domain.UpdatePaymentInput) (*domain.Payment, error) {
	var cs changeSet
	setIf(&cs, "amount", in.Amount)
	if in.Method != nil {
		cs.set("method", string(*in.Method))
	}
	setIf(&cs, "received_at", in.ReceivedAt)
	setNullable(&cs, "reference", in.Reference)
	setNullable(&cs, "invoice_id", in.InvoiceID)

	var m *models.Payment
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := paymentsTable.lock(ctx, tx, id); err != nil {
			return err
		}
		if err := lockInvoiceRef(ctx, tx, in.InvoiceID.Ptr()); err != nil {
			return err
		}
		var err error
		m, err = paymentsTable.update(ctx, tx, id, cs)
		return err
	})
	if err != nil {
		return nil, err
	}
	p := mapping.ToDomainPayment(*m)
	return &p, nil
}

func (r *PgxPaymentRepository) Delete(ctx context.Context, id int64) error {
	return paymentsTable.delete(ctx, r.Pool, id)
}
