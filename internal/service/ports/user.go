package ports

import (
	"context"

	"github.com/avdeenkov/seatbooker/internal/domain"
)

type UserRepo interface {
	// Upsert creates the user or returns the existing one with the same
	// username. Atomic: concurrent first logins may not create duplicates.
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
