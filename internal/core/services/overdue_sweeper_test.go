package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOverdueSvc struct {
	mock.Mock
}

func (m *mockOverdueSvc) SweepOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewOverdueSweeper_InvalidSchedule(t *testing.T) {
	_, err := NewOverdueSweeper(new(mockOverdueSvc), "every tuesday", discardLogger())
	assert.ErrorContains(t, err, "invalid overdue sweep schedule")
}

func TestOverdueSweeper_Run(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := new(mockOverdueSvc)
	svc.On("SweepOverdue", mock.Anything, now).Return(int64(2), nil).Once()
	svc.On("SweepOverdue", mock.Anything, now).Return(int64(0), errors.New("db down")).Once()

	sweeper, err := NewOverdueSweeper(svc, "@hourly", discardLogger())
	require.NoError(t, err)
	sweeper.now = func() time.Time { return now }

	sweeper.Run()
	sweeper.Run()

	svc.AssertNumberOfCalls(t, "SweepOverdue", 2)
}

func TestOverdueSweeper_StartStop(t *testing.T) {
	sweeper, err := NewOverdueSweeper(new(mockOverdueSvc), "@every 1h", discardLogger())
	require.NoError(t, err)

	sweeper.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
	assert.NoError(t, ctx.Err())
}
