package pgsql

import (
	"context"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var expensesTable = crudTable[models.Expense]{
	name:    "expenses",
	columns: "id, amount, category, vendor, incurred_at, notes, created_at, updated_at",
	orderBy: "incurred_at DESC, id ASC",
}

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) Create(ctx context.Context, in domain.CreateExpenseInput) (*domain.Expense, error) {
	var cs changeSet
	cs.set("amount", in.Amount)
	cs.set("category", in.Category)
	cs.set("vendor", in.Vendor)
	cs.set("incurred_at", in.IncurredAt)
	cs.set("notes", in.Notes)

	m, err := expensesTable.insert(ctx, r.Pool, cs)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainExpense(*m)
	return &e, nil
}

func (r *PgxExpenseRepository) List(ctx context.Context) ([]domain.Expense, error) {
	ms, err := expensesTable.list(ctx, r.Pool)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) GetByID(ctx context.Context, id int64) (*domain.Expense, error) {
	m, err := expensesTable.getByID(ctx, r.Pool, id)
	if err != nil || m == nil {
		return nil, err
	}
	e := mapping.ToDomainExpense(*m)
	return &e, nil
}

func (r *PgxExpenseRepository) Update(ctx context.Context, id int64, in domain.UpdateExpenseInput) (*domain.Expense, error) {
	var cs changeSet
	setIf(&cs, "amount", in.Amount)
	setIf(&cs, "category", in.Category)
	setIf(&cs, "vendor", in.Vendor)
	setIf(&cs, "incurred_at", in.IncurredAt)
	setNullable(&cs, "notes", in.Notes)

	m, err := expensesTable.update(ctx, r.Pool, id, cs)
	if err != nil {
		return nil, err
	}
	e := mapping.ToDomainExpense(*m)
	return &e, nil
}

func (r *PgxExpenseRepository) Delete(ctx context.Context, id int64) error {
	return expensesTable.delete(ctx, r.Pool, id)
}
