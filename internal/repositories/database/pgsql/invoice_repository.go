package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerbook/internal/models"
	"github.com/SscSPs/ledgerbook/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

var invoicesTable = crudTable[models.Invoice]{
	name:    "invoices",
	columns: "id, number, client, amount, status, issued_at, due_at, description, created_at, updated_at",
	orderBy: "due_at ASC, id ASC",
}

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// Create inserts an invoice. A duplicate number is a Conflict; the
// invoices_due_after_issue check surfaces as a Validation error on dueAt.
func (r *PgxInvoiceRepository) Create(ctx context.Context, in domain.CreateInvoiceInput) (*domain.Invoice, error) {
	status := in.Status
	if status == "" {
		status = domain.InvoiceStatusPending
	}

	var cs changeSet
	cs.set("number", in.Number)
	cs.set("client", in.Client)
	cs.set("amount", in.Amount)
	cs.set("status", string(status))
	cs.set("issued_at", in.IssuedAt)
	cs.set("due_at", in.DueAt)
	cs.set("description", in.Description)

	m, err := invoicesTable.insert(ctx, r.Pool, cs)
	if err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(*m)
	return &inv, nil
}

func (r *PgxInvoiceRepository) List(ctx context.Context) ([]domain.Invoice, error) {
	ms, err := invoicesTable.list(ctx, r.Pool)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainInvoiceSlice(ms), nil
}

func (r *PgxInvoiceRepository) GetByID(ctx context.Context, id int64) (*domain.Invoice, error) {
	m, err := invoicesTable.getByID(ctx, r.Pool, id)
	if err != nil || m == nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(*m)
	return &inv, nil
}

// Update applies the present fields. The date check constraint runs against
// the merged row, covering updates that move only one of the two dates.
func (r *PgxInvoiceRepository) Update(ctx context.Context, id int64, in domain.UpdateInvoiceInput) (*domain.Invoice, error) {
	var cs changeSet
	setIf(&cs, "number", in.Number)
	setIf(&cs, "client", in.Client)
	setIf(&cs, "amount", in.Amount)
	if in.Status != nil {
		cs.set("status", string(*in.Status))
	}
	setIf(&cs, "issued_at", in.IssuedAt)
	setIf(&cs, "due_at", in.DueAt)
	setNullable(&cs, "description", in.Description)

	m, err := invoicesTable.update(ctx, r.Pool, id, cs)
	if err != nil {
		return nil, err
	}
	inv := mapping.ToDomainInvoice(*m)
	return &inv, nil
}

// Delete removes the invoice; payments and credits keep their rows with
// invoice_id set to NULL by the foreign keys.
func (r *PgxInvoiceRepository) Delete(ctx context.Context, id int64) error {
	return invoicesTable.delete(ctx, r.Pool, id)
}

func (r *PgxInvoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	query := `
		UPDATE invoices
		SET status = 'OVERDUE', updated_at = NOW()
		WHERE status = 'PENDING' AND due_at < $1;
	`
	tag, err := r.Pool.Exec(ctx, query, asOf)
	if err != nil {
		return 0, translatePgError(fmt.Errorf("failed to mark overdue invoices: %w", err))
	}
	return tag.RowsAffected(), nil
}
