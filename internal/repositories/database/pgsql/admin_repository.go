package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(pool *pgxpool.Pool) portsrepo.AdminRepository {
	return &PgxAdminRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

// ResetAll truncates every record table and restarts the id sequences.
func (r *PgxAdminRepository) ResetAll(ctx context.Context) error {
	_, err := r.Pool.Exec(ctx, `TRUNCATE payments, credits, expenses, incomes, invoices RESTART IDENTITY`)
	if err != nil {
		return translatePgError(fmt.Errorf("failed to reset tables: %w", err))
	}
	return nil
}
