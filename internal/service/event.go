package service

import (
	"context"
	"fmt"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/service/ports"
	"github.com/google/uuid"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Type == "" {
		return nil, fmt.Errorf("%w: type is required", domain.ErrValidation)
	}
	if input.Date == "" {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.TotalSeats < 0 {
		return nil, fmt.Errorf("%w: total seats must not be negative", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Type:        input.Type,
		Date:        input.Date,
		Price:       input.Price,
		TotalSeats:  input.TotalSeats,
		BookedSeats: 0,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if input.Type != nil && *input.Type == "" {
		return nil, fmt.Errorf("%w: type must not be empty", domain.ErrValidation)
	}
	if input.Date != nil && *input.Date == "" {
		return nil, fmt.Errorf("%w: date must not be empty", domain.ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.TotalSeats != nil && *input.TotalSeats < 0 {
		return nil, fmt.Errorf("%w: total seats must not be negative", domain.ErrValidation)
	}

	event, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}
