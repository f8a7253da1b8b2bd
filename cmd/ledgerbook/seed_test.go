package main

import (
	"context"
	"testing"

	"github.com/SscSPs/ledgerbook/internal/core/domain"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/SscSPs/ledgerbook/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRecords(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	container := services.NewServiceContainer(repos)

	counts, err := seedRecords(ctx, container)
	require.NoError(t, err)
	assert.Equal(t, [5]int{2, 2, 2, 3, 3}, counts)

	invoices, err := container.Invoice.List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, domain.InvoiceStatusPending, invoices[0].Status)

	payments, err := container.Payment.List(ctx)
	require.NoError(t, err)
	for _, p := range payments {
		assert.NotNil(t, p.InvoiceID)
	}

	// Seeding twice on a reset store gives the same identifiers.
	require.NoError(t, repos.AdminRepo.ResetAll(ctx))
	_, err = seedRecords(ctx, container)
	require.NoError(t, err)
	again, err := container.Invoice.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "INV-2024-0001", again.Number)
}
