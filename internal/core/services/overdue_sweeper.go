package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/ledgerbook/internal/core/ports/services"
	"github.com/SscSPs/ledgerbook/internal/middleware"
	"github.com/robfig/cron/v3"
)

const sweepTimeout = time.Minute

// OverdueSweeper runs the overdue sweep on a cron schedule.
type OverdueSweeper struct {
	cron   *cron.Cron
	svc    portssvc.OverdueSvc
	logger *slog.Logger
	now    func() time.Time
}

// NewOverdueSweeper schedules svc according to schedule, a standard cron
// expression or descriptor such as "@hourly".
func NewOverdueSweeper(svc portssvc.OverdueSvc, schedule string, logger *slog.Logger) (*OverdueSweeper, error) {
	cronLogger := cronLogAdapter{logger: logger.With(slog.String("component", "overdue_sweeper"))}
	s := &OverdueSweeper{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		svc:    svc,
		logger: cronLogger.logger,
		now:    time.Now,
	}
	if _, err := s.cron.AddFunc(schedule, s.Run); err != nil {
		return nil, fmt.Errorf("invalid overdue sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start begins running the schedule in the background.
func (s *OverdueSweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep, bounded by ctx.
func (s *OverdueSweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Overdue sweep still running at shutdown")
	}
}

// Run performs one sweep immediately.
func (s *OverdueSweeper) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()
	ctx = middleware.WithLogger(ctx, s.logger)

	if _, err := s.svc.SweepOverdue(ctx, s.now()); err != nil {
		s.logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
	}
}

// cronLogAdapter satisfies cron.Logger on top of slog.
type cronLogAdapter struct {
	logger *slog.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
