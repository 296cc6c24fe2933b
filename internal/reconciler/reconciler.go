package reconciler

import (
	"context"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type seatReconciler interface {
	ReconcileSeatCounters(ctx context.Context) ([]domain.SeatDrift, error)
}

// Reconciler periodically verifies that every event's seat counter matches
// the sum of its bookings.
type Reconciler struct {
	bookingService seatReconciler
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService seatReconciler,
	interval time.Duration,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reconciler) tick(ctx context.Context) {
	drifts, err := r.bookingService.ReconcileSeatCounters(ctx)
	if err != nil {
		r.logger.Error("failed to reconcile seat counters",
			logger.String("error", err.Error()),
		)
		return
	}

	if len(drifts) > 0 {
		r.logger.Warn("seat counters out of sync",
			logger.Int("events", len(drifts)),
		)
	}
}
