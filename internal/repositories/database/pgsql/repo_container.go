package pgsql

import (
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every Postgres repository on the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: newPgxInvoiceRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
		CreditRepo:  newPgxCreditRepository(dbPool),
		ExpenseRepo: newPgxExpenseRepository(dbPool),
		IncomeRepo:  newPgxIncomeRepository(dbPool),
		AdminRepo:   newPgxAdminRepository(dbPool),
	}
}
