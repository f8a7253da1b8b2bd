package main

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/core/services"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Reset storage and load sample records",
	Long: `Delete every record, restart identifiers and insert a small sample
book: two invoices with their payments and credits, expenses and incomes.

Records go through the same validation as API requests.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	repos, closeStorage, err := openRepositories(ctx, cfg.RunMigrations)
	if err != nil {
		return err
	}
	defer closeStorage()

	if err := repos.AdminRepo.ResetAll(ctx); err != nil {
		return fmt.Errorf("failed to reset storage: %w", err)
	}

	container := services.NewServiceContainer(repos)
	counts, err := seedRecords(ctx, container)
	if err != nil {
		return err
	}

	logger.Info("Seed completed",
		slog.Int("invoices", counts[0]),
		slog.Int("payments", counts[1]),
		slog.Int("credits", counts[2]),
		slog.Int("expenses", counts[3]),
		slog.Int("incomes", counts[4]),
	)
	return nil
}

// seedRecords inserts the sample book and returns how many records of each
// kind were created, in invoice, payment, credit, expense, income order.
func seedRecords(ctx context.Context, svc *portssvc.ServiceContainer) ([5]int, error) {
	var counts [5]int

	consulting, err := svc.Invoice.Create(ctx, map[string]any{
		"number":      "INV-2024-0001",
		"client":      "Acme Industries",
		"amount":      "15000.00",
		"issuedAt":    "2024-07-01",
		"dueAt":       "2024-07-31",
		"description": "Quarterly consulting retainer.",
	})
	if err != nil {
		return counts, fmt.Errorf("seed invoice: %w", err)
	}
	subscription, err := svc.Invoice.Create(ctx, map[string]any{
		"number":      "INV-2024-0002",
		"client":      "Globex Corporation",
		"amount":      "6000.00",
		"issuedAt":    "2024-07-15",
		"dueAt":       "2024-08-14",
		"description": "Annual SaaS subscription renewal.",
	})
	if err != nil {
		return counts, fmt.Errorf("seed invoice: %w", err)
	}
	counts[0] = 2

	payments := []map[string]any{
		{"amount": "12000.00", "method": "BANK_TRANSFER", "reference": "WT-829173", "receivedAt": "2024-07-05T10:30:00Z", "invoiceId": consulting.ID},
		{"amount": "3000.00", "method": "CARD", "reference": "CC-554430", "receivedAt": "2024-07-20T15:45:00Z", "invoiceId": subscription.ID},
	}
	for _, p := range payments {
		if _, err := svc.Payment.Create(ctx, p); err != nil {
			return counts, fmt.Errorf("seed payment: %w", err)
		}
		counts[1]++
	}

	credits := []map[string]any{
		{"amount": "500.00", "reason": "Early payment incentive", "issuedAt": "2024-07-06", "invoiceId": consulting.ID},
		{"amount": "250.00", "reason": "Support downtime credit", "issuedAt": "2024-07-25", "invoiceId": subscription.ID},
	}
	for _, c := range credits {
		if _, err := svc.Credit.Create(ctx, c); err != nil {
			return counts, fmt.Errorf("seed credit: %w", err)
		}
		counts[2]++
	}

	expenses := []map[string]any{
		{"amount": "1200.00", "category": "Rent", "vendor": "Downtown Offices", "incurredAt": "2024-07-01", "notes": "July office rent."},
		{"amount": "89.99", "category": "Software", "vendor": "CloudDocs", "incurredAt": "2024-07-03"},
		{"amount": "342.50", "category": "Travel", "vendor": "Metro Rail", "incurredAt": "2024-07-12", "notes": "Client visit to Acme."},
	}
	for _, e := range expenses {
		if _, err := svc.Expense.Create(ctx, e); err != nil {
			return counts, fmt.Errorf("seed expense: %w", err)
		}
		counts[3]++
	}

	incomes := []map[string]any{
		{"amount": "12000.00", "source": "Acme Industries", "receivedAt": "2024-07-05T10:30:00Z", "notes": "Consulting retainer payment."},
		{"amount": "3000.00", "source": "Globex Corporation", "receivedAt": "2024-07-20T15:45:00Z", "notes": "Subscription renewal partial payment."},
		{"amount": "4500.00", "source": "Initech", "receivedAt": "2024-06-18T12:15:00Z", "notes": "Ad-hoc implementation work."},
	}
	for _, i := range incomes {
		if _, err := svc.Income.Create(ctx, i); err != nil {
			return counts, fmt.Errorf("seed income: %w", err)
		}
		counts[4]++
	}

	return counts, nil
}
