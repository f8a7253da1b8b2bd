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

var creditsTable = crudTable[models.Credit]{
	name:    "credits",
	columns: "id, amount, reason, issued_at, invoice_id, created_at, updated_at",
	orderBy: "issued_at DESC, id ASC",
}

type PgxCreditRepository struct {
	BaseRepository
}

// newPgxCreditRepository creates a new repository for credit data.
func newPgxCreditRepository(pool *pgxpool.Pool) portsrepo.CreditRepositoryWithTx {
	return &PgxCreditRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CreditRepositoryWithTx = (*PgxCreditRepository)(nil)

func (r *PgxCreditRepository) Create(ctx context.Context, in domain.CreateCreditInput) (*domain.Credit, error) {
	var cs changeSet
	cs.set("amount", in.Amount)
	cs.set("reason", in.Reason)
	cs.set("issued_at", in.IssuedAt)
	cs.set("invoice_id", in.InvoiceID)

	var m *models.Credit
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockInvoiceRef(ctx, tx, in.InvoiceID); err != nil {
			return err
		}
		var err error
		m, err = creditsTable.insert(ctx, tx, cs)
		return err
	})
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCredit(*m)
	return &c, nil
}

func (r *PgxCreditRepository) List(ctx context.Context) ([]domain.Credit, error) {
	ms, err := creditsTable.list(ctx, r.Pool)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCreditSlice(ms), nil
}

func (r *PgxCreditRepository) GetByID(ctx context.Context, id int64) (*domain.Credit, error) {
	m, err := creditsTable.getByID(ctx, r.Pool, id)
	if err != nil || m == nil {
		return nil, err
	}
	c := mapping.ToDomainCredit(*m)
	return &c, nil
}

func (r *PgxCreditRepository) Update(ctx context.Context, id int64, in domain.UpdateCreditInput) (*domain.Credit, error) {
	var cs changeSet
	setIf(&cs, "amount", in.Amount)
	setIf(&cs, "reason", in.Reason)
	setIf(&cs, "issued_at", in.IssuedAt)
	setNullable(&cs, "invoice_id", in.InvoiceID)

	var m *models.Credit
	err := r.inTx(ctx, func(tx pgx.Tx) error {
		if err := creditsTable.lock(ctx, tx, id); err != nil {
			return err
		}
		if err := lockInvoiceRef(ctx, tx, in.InvoiceID.Ptr()); err != nil {
			return err
		}
		var err error
		m, err = creditsTable.update(ctx, tx, id, cs)
		return err
	})
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCredit(*m)
	return &c, nil
}

func (r *PgxCreditRepository) Delete(ctx context.Context, id int64) error {
	return creditsTable.delete(ctx, r.Pool, id)
}
