package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerbook/internal/apperrors"
	portsrepo "github.com/SscSPs/ledgerbook/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/platform/metrics"
)

type overdueService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// NewOverdueService creates the service that flags invoices past their due date.
func NewOverdueService(invoiceRepo portsrepo.InvoiceRepositoryFacade) portssvc.OverdueSvc {
	return &overdueService{invoiceRepo: invoiceRepo}
}

var _ portssvc.OverdueSvc = (*overdueService)(nil)

// SweepOverdue marks PENDING invoices whose dueAt is before asOf as OVERDUE.
func (s *overdueService) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	n, err := s.invoiceRepo.MarkOverdue(ctx, asOf.UTC())
	if err != nil {
		s.LogError(ctx, err, "Failed to mark overdue invoices")
		return 0, apperrors.AsAppError(err)
	}

	metrics.AddOverdueMarked(n)
	if n > 0 {
		s.LogInfo(ctx, "Marked invoices overdue", slog.Int64("count", n), slog.Time("as_of", asOf))
	}
	return n, nil
}
