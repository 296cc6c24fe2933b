package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/reconciler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReconciler_Tick_ReportsDrift(t *testing.T) {
	svc := mocks.NewMockSeatReconciler(t)
	log := newTestLogger(t)

	r := New(svc, 50*time.Millisecond, log)

	drifts := []domain.SeatDrift{
		{EventID: "e1", BookedSeats: 5, ActualSeats: 4},
	}
	svc.EXPECT().ReconcileSeatCounters(mock.Anything).Return(drifts, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(svc.Calls), 1)
}

func TestReconciler_Tick_HandlesError(t *testing.T) {
	svc := mocks.NewMockSeatReconciler(t)
	log := newTestLogger(t)

	r := New(svc, 50*time.Millisecond, log)

	svc.EXPECT().ReconcileSeatCounters(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(svc.Calls), 1)
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	svc := mocks.NewMockSeatReconciler(t)
	log := newTestLogger(t)

	r := New(svc, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop on context cancel")
	}
}

func TestReconciler_MultipleTicks(t *testing.T) {
	svc := mocks.NewMockSeatReconciler(t)
	log := newTestLogger(t)

	r := New(svc, 30*time.Millisecond, log)

	svc.EXPECT().ReconcileSeatCounters(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	calls := len(svc.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
