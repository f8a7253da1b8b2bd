package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// CrudReader defines read operations shared by every record type.
type CrudReader[E any] interface {
	// List returns all records in the resource's canonical order. Never nil.
	List(ctx context.Context) ([]E, error)
	// GetByID returns (nil, nil) when the record does not exist.
	GetByID(ctx context.Context, id int64) (*E, error)
}

// CrudWriter defines write operations shared by every record type.
// Implementations return apperrors only: NotFound, Conflict, BadRequest,
// Validation or Internal.
type CrudWriter[E, C, U any] interface {
	Create(ctx context.Context, in C) (*E, error)
	Update(ctx context.Context, id int64, in U) (*E, error)
	Delete(ctx context.Context, id int64) error
}

// CrudRepository is the storage port consumed by the generic entity service.
type CrudRepository[E, C, U any] interface {
	CrudReader[E]
	CrudWriter[E, C, U]
}

// InvoiceRepositoryFacade adds the overdue sweep to the invoice CRUD port.
type InvoiceRepositoryFacade interface {
	CrudRepository[domain.Invoice, domain.CreateInvoiceInput, domain.UpdateInvoiceInput]

	// MarkOverdue moves PENDING invoices due before asOf to OVERDUE and
	// returns how many rows changed.
	MarkOverdue(ctx context.Context, asOf time.Time) (int64, error)
}

// PaymentRepositoryFacade stores payments.
type PaymentRepositoryFacade = CrudRepository[domain.Payment, domain.CreatePaymentInput, domain.UpdatePaymentInput]

// CreditRepositoryFacade stores credits.
type CreditRepositoryFacade = CrudRepository[domain.Credit, domain.CreateCreditInput, domain.UpdateCreditInput]

// ExpenseRepositoryFacade stores expenses.
type ExpenseRepositoryFacade = CrudRepository[domain.Expense, domain.CreateExpenseInput, domain.UpdateExpenseInput]

// IncomeRepositoryFacade stores incomes.
type IncomeRepositoryFacade = CrudRepository[domain.Income, domain.CreateIncomeInput, domain.UpdateIncomeInput]

// AdminRepository holds maintenance operations used by the seed command.
type AdminRepository interface {
	// ResetAll removes every record and restarts identifier sequences.
	ResetAll(ctx context.Context) error
}
