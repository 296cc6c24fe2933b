package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/metrics"
	"github.com/avdeenkov/seatbooker/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", domain.ErrValidation)
	}
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if _, err = s.userRepo.GetByID(ctx, input.UserID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   input.EventID,
		UserID:    input.UserID,
		Username:  input.Username,
		Seats:     input.Seats,
		CreatedAt: time.Now().UTC(),
	}

	seatsLeft, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnoughSeats):
			metrics.BookingsRejected.WithLabelValues("no_seats").Inc()
		case errors.Is(err, domain.ErrEventNotFound):
			metrics.BookingsRejected.WithLabelValues("event_not_found").Inc()
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.BookingsCreated.Inc()
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
		logger.Int("seats", booking.Seats),
		logger.Int("seats_left", seatsLeft),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, event)
	if seatsLeft == 0 {
		go s.notifier.NotifyEventSoldOut(context.WithoutCancel(ctx), event)
	}

	return booking, nil
}

// ReconcileSeatCounters compares each event's booked_seats with the sum of
// its bookings. Drift is reported, never repaired: the counter is maintained
// atomically, so a mismatch means a bug or a manual edit.
func (s *BookingService) ReconcileSeatCounters(ctx context.Context) ([]domain.SeatDrift, error) {
	drifts, err := s.bookingRepo.SeatCounterDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("seat counter drift: %w", err)
	}

	for _, d := range drifts {
		metrics.SeatCounterDrift.Inc()
		s.logger.Error("seat counter drift detected",
			logger.String("event_id", d.EventID),
			logger.Int("booked_seats", d.BookedSeats),
			logger.Int("actual_seats", d.ActualSeats),
		)
	}

	return drifts, nil
}
