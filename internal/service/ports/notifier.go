package ports

import (
	"context"

	"github.com/avdeenkov/seatbooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, e *domain.Event)
	NotifyEventSoldOut(ctx context.Context, e *domain.Event)
}
