package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// LoginOrCreate resolves a username to a user, creating it on first login.
// The generated id is only used when the username is new; otherwise the
// upsert returns the existing row.
func (s *UserService) LoginOrCreate(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	out, err := s.repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("login or create: %w", err)
	}

	return out, nil
}
