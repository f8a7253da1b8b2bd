package pgsql

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var incomesTable = crudTable[models.Income]{
	name:    "incomes",
	columns: "id, amount, source, received_at, notes, created_at, updated_at",
	orderBy: "received_at DESC, id ASC",
}

type PgxIncomeRepository struct {
	BaseRepository
}

// newPgxIncomeRepository creates a new repository for income data.
func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

func (r *PgxIncomeRepository) Create(ctx context.Context, in domain.CreateIncomeInput) (*domain.Income, error) {
	var cs changeSet
	cs.set("amount", in.Amount)
	cs.set("source", in.Source)
	cs.set("received_at", in.ReceivedAt)
	cs.set("notes", in.Notes)

	m, err := incomesTable.insert(ctx, r.Pool, cs)
	if err != nil {
		return nil, err
	}
	i := mapping.ToDomainIncome(*m)
	return &i, nil
}

func (r *PgxIncomeRepository) List(ctx context.Context) ([]domain.Income, error) {
	ms, err := incomesTable.list(ctx, r.Pool)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainIncomeSlice(ms), nil
}

func (r *PgxIncomeRepository) GetByID(ctx context.Context, id int64) (*domain.Income, error) {
	m, err := incomesTable.getByID(ctx, r.Pool, id)
	if err != nil || m == nil {
		return nil, err
	}
	i := mapping.ToDomainIncome(*m)
	return &i, nil
}

func (r *PgxIncomeRepository) Update(ctx context.Context, id int64, in domain.UpdateIncomeInput) (*domain.Income, error) {
	var cs changeSet
	setIf(&cs, "amount", in.Amount)
	setIf(&cs, "source", in.Source)
	setIf(&cs, "received_at", in.ReceivedAt)
	setNullable(&cs, "notes", in.Notes)

	m, err := incomesTable.update(ctx, r.Pool, id, cs)
	if err != nil {
		return nil, err
	}
	i := mapping.ToDomainIncome(*m)
	return &i, nil
}

func (r *PgxIncomeRepository) Delete(ctx context.Context, id int64) error {
	return incomesTable.delete(ctx, r.Pool, id)
}
