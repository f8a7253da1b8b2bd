package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// changeSet collects column assignments for INSERT and UPDATE statements.
type changeSet struct {
	cols []string
	args []any
}

func (cs *changeSet) set(col string, v any) {
	cs.cols = append(cs.cols, col)
	cs.args = append(cs.args, v)
}

// setIf adds col only when v is non-nil.
func setIf[T any](cs *changeSet, col string, v *T) {
	if v != nil {
		cs.set(col, *v)
	}
}

// setNullable adds col when n is present; an explicit null writes NULL.
func setNullable[T any](cs *changeSet, col string, n domain.Nullable[T]) {
	if n.Set {
		cs.set(col, n.Ptr())
	}
}

// crudTable runs the statements shared by every table. M is the row model
// scanned with pgx.RowToStructByName, so columns must match its db tags.
type crudTable[M any] struct {
	name    string
	columns string
	orderBy string
}

func (t crudTable[M]) list(ctx context.Context, db dbtx) ([]M, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`, t.columns, t.name, t.orderBy)
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to query %s: %w", t.name, err))
	}
	out, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to scan %s: %w", t.name, err))
	}
	return out, nil
}

// getByID returns (nil, nil) when no row matches.
func (t crudTable[M]) getByID(ctx context.Context, db dbtx, id int64) (*M, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, t.columns, t.name)
	rows, err := db.Query(ctx, query, id)
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to query %s %d: %w", t.name, id, err))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to scan %s %d: %w", t.name, id, err))
	}
	return &m, nil
}

// lock takes a row lock on id for the rest of the transaction. A missing row is NotFound.
func (t crudTable[M]) lock(ctx context.Context, db dbtx, id int64) error {
	var locked int64
	err := db.QueryRow(ctx, fmt.Sprintf(`SELECT id FROM %s WHERE id = $1 FOR UPDATE`, t.name), id).Scan(&locked)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to lock %s %d: %w", t.name, id, err))
	}
	return nil
}

func (t crudTable[M]) insertSQL(cs changeSet) string {
	placeholders := make([]string, len(cs.cols))
	for i := range cs.cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
		t.name, strings.Join(cs.cols, ", "), strings.Join(placeholders, ", "), t.columns)
}

func (t crudTable[M]) insert(ctx context.Context, db dbtx, cs changeSet) (*M, error) {
	rows, err := db.Query(ctx, t.insertSQL(cs), cs.args...)
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to insert into %s: %w", t.name, err))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to insert into %s: %w", t.name, err))
	}
	return &m, nil
}

func (t crudTable[M]) updateSQL(cs changeSet) string {
	assignments := make([]string, 0, len(cs.cols)+1)
	for i, col := range cs.cols {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", col, i+1))
	}
	assignments = append(assignments, "updated_at = NOW()")
	return fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d RETURNING %s`,
		t.name, strings.Join(assignments, ", "), len(cs.cols)+1, t.columns)
}

// update applies cs to row id. A missing row is NotFound.
func (t crudTable[M]) update(ctx context.Context, db dbtx, id int64, cs changeSet) (*M, error) {
	args := append(append([]any{}, cs.args...), id)
	rows, err := db.Query(ctx, t.updateSQL(cs), args...)
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to update %s %d: %w", t.name, id, err))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, translatePgError(fmt.Errorf("failed to update %s %d: %w", t.name, id, err))
	}
	return &m, nil
}

func (t crudTable[M]) delete(ctx context.Context, db dbtx, id int64) error {
	tag, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name), id)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to delete %s %d: %w", t.name, id, err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("")
	}
	return nil
}

// lockInvoiceRef verifies that a referenced invoice exists and holds a key
// share lock on it until the surrounding transaction ends.
func lockInvoiceRef(ctx context.Context, db dbtx, invoiceID *int64) error {
	if invoiceID == nil {
		return nil
	}
	var id int64
	err := db.QueryRow(ctx, `SELECT id FROM invoices WHERE id = $1 FOR KEY SHARE`, *invoiceID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewInvalidRelationError("invoiceId", *invoiceID)
	}
	if err != nil {
		return translatePgError(fmt.Errorf("failed to check invoice %d: %w", *invoiceID, err))
	}
	return nil
}
