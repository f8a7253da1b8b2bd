package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
)

// EntityReaderSvc defines read operations of a record service. R is the
// serialized form handed to callers.
type EntityReaderSvc[R any] interface {
	// List returns every record in storage order.
	List(ctx context.Context) ([]R, error)

	// GetByID returns the record or an apperrors NotFound error.
	GetByID(ctx context.Context, id int64) (R, error)
}

// EntityWriterSvc defines write operations of a record service. Payloads are
// decoded JSON values, validated before any storage call.
type EntityWriterSvc[R any] interface {
	Create(ctx context.Context, payload any) (R, error)
	Update(ctx context.Context, id int64, payload any) (R, error)
	Delete(ctx context.Context, id int64) error
}

// EntitySvcFacade combines the read and write sides of a record service.
type EntitySvcFacade[R any] interface {
	EntityReaderSvc[R]
	EntityWriterSvc[R]
}

// DictionarySvc serves the read-only bookkeeping glossary.
type DictionarySvc interface {
	ListEntries(ctx context.Context) []domain.DictionaryEntry
}

// OverdueSvc flags invoices whose due date has passed.
type OverdueSvc interface {
	SweepOverdue(ctx context.Context, asOf time.Time) (int64, error)
}
