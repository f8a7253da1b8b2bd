// Package memory is a process-local storage engine with the same observable
// behavior as the Postgres repositories: unique invoice numbers, invoice
// references that must exist and are cleared on delete, and the invoice date
// check. It backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
)

// table holds the rows of one record type keyed by id.
type table[E any] struct {
	rows   map[int64]E
	nextID int64
}

func newTable[E any]() *table[E] {
	return &table[E]{rows: make(map[int64]E)}
}

func (t *table[E]) insert(build func(id int64) E) E {
	t.nextID++
	row := build(t.nextID)
	t.rows[t.nextID] = row
	return row
}

// sorted returns the rows ordered by key, ties broken by id ascending.
func (t *table[E]) sorted(clone func(E) E, id func(E) int64, key func(a, b E) int) []E {
	out := make([]E, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, clone(row))
	}
	slices.SortFunc(out, func(a, b E) int {
		if c := key(a, b); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
	return out
}

// Store owns every table. One lock guards all of them so that cross-table
// rules (invoice references) are checked atomically with the write.
type Store struct {
	mu       sync.RWMutex
	invoices *table[domain.Invoice]
	payments *table[domain.Payment]
	credits  *table[domain.Credit]
	expenses *table[domain.Expense]
	incomes  *table[domain.Income]
	now      func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	s := &Store{now: time.Now}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.invoices = newTable[domain.Invoice]()
	s.payments = newTable[domain.Payment]()
	s.credits = newTable[domain.Credit]()
	s.expenses = newTable[domain.Expense]()
	s.incomes = newTable[domain.Income]()
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// NewRepositoryProvider wires every memory repository to store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InvoiceRepo: &invoiceRepository{store: store},
		PaymentRepo: &paymentRepository{store: store},
		CreditRepo:  &creditRepository{store: store},
		ExpenseRepo: &expenseRepository{store: store},
		IncomeRepo:  &incomeRepository{store: store},
		AdminRepo:   &adminRepository{store: store},
	}
}

type adminRepository struct {
	store *Store
}

var _ portsrepo.AdminRepository = (*adminRepository)(nil)

// ResetAll drops every row and restarts ids at 1.
func (r *adminRepository) ResetAll(_ context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.reset()
	return nil
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func newest[E any](at func(E) time.Time) func(a, b E) int {
	return func(a, b E) int {
		return at(b).Compare(at(a))
	}
}
