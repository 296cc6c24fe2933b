package ports

import (
	"context"

	"github.com/avdeenkov/seatbooker/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking and increments the event's seat counter in
	// one atomic operation. It returns the seats remaining after the insert.
	Create(ctx context.Context, b *domain.Booking) (int, error)
	SeatCounterDrift(ctx context.Context) ([]domain.SeatDrift, error)
}
