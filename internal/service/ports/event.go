package ports

import (
	"context"

	"github.com/avdeenkov/seatbooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, id string, patch domain.UpdateEventInput) (*domain.Event, error)
}
