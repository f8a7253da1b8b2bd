package pgsql

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

type row struct{}

var testTable = crudTable[row]{name: "things", columns: "id, a, b", orderBy: "id ASC"}

func TestInsertSQL(t *testing.T) {
	var cs changeSet
	cs.set("a", 1)
	cs.set("b", "x")

	assert.Equal(t, `INSERT INTO things (a, b) VALUES ($1, $2) RETURNING id, a, b`, testTable.insertSQL(cs))
	assert.Equal(t, []any{1, "x"}, cs.args)
}

func TestUpdateSQL(t *testing.T) {
	var cs changeSet
	cs.set("a", 1)

	assert.Equal(t, `UPDATE things SET a = $1, updated_at = NOW() WHERE id = $2 RETURNING id, a, b`, testTable.updateSQL(cs))
}

func TestChangeSetHelpers(t *testing.T) {
	var cs changeSet
	name := "n"

	setIf(&cs, "skipped", (*string)(nil))
	setIf(&cs, "name", &name)
	setNullable(&cs, "absent", domain.Nullable[string]{})
	setNullable(&cs, "cleared", domain.NullOf[string]())
	setNullable(&cs, "notes", domain.ValueOf("hello"))

	assert.Equal(t, []string{"name", "cleared", "notes"}, cs.cols)
	assert.Equal(t, "n", cs.args[0])
	assert.Nil(t, cs.args[1])
	assert.Equal(t, "hello", *cs.args[2].(*string))
}

// scanRow returns err from Scan, or writes id into the first destination.
type scanRow struct {
	id  int64
	err error
}

func (r scanRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.id
	return nil
}

// rowDB answers every QueryRow with row and records the statements it saw.
type rowDB struct {
	row     scanRow
	queries []string
}

func (db *rowDB) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (db *rowDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, nil
}

func (db *rowDB) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	db.queries = append(db.queries, sql)
	return db.row
}

func TestLock(t *testing.T) {
	t.Run("missing row", func(t *testing.T) {
		db := &rowDB{row: scanRow{err: pgx.ErrNoRows}}

		err := testTable.lock(context.Background(), db, 7)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Equal(t, []string{`SELECT id FROM things WHERE id = $1 FOR UPDATE`}, db.queries)
	})

	t.Run("existing row", func(t *testing.T) {
		db := &rowDB{row: scanRow{id: 7}}

		assert.NoError(t, testTable.lock(context.Background(), db, 7))
	})
}

func TestLockInvoiceRef(t *testing.T) {
	missing := int64(42)

	db := &rowDB{row: scanRow{err: pgx.ErrNoRows}}
	assert.ErrorIs(t, lockInvoiceRef(context.Background(), db, &missing), apperrors.ErrBadRequest)

	assert.NoError(t, lockInvoiceRef(context.Background(), &rowDB{}, nil))
}
