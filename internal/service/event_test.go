package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		Name:       "Concert",
		Type:       "music",
		Date:       "2026-10-01",
		Price:      25.50,
		TotalSeats: 100,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Concert", event.Name)
	assert.Equal(t, 100, event.TotalSeats)
	assert.Equal(t, 0, event.BookedSeats)
	assert.Equal(t, 100, event.AvailableSeats())
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"empty name", domain.CreateEventInput{Type: "music", Date: "2026-10-01", TotalSeats: 10}},
		{"empty type", domain.CreateEventInput{Name: "X", Date: "2026-10-01", TotalSeats: 10}},
		{"empty date", domain.CreateEventInput{Name: "X", Type: "music", TotalSeats: 10}},
		{"negative price", domain.CreateEventInput{Name: "X", Type: "music", Date: "2026-10-01", Price: -1}},
		{"negative seats", domain.CreateEventInput{Name: "X", Type: "music", Date: "2026-10-01", TotalSeats: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockEventRepo(t)
			svc := NewEventService(repo)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		Name:       "Concert",
		Type:       "music",
		Date:       "2026-10-01",
		TotalSeats: 100,
	})

	require.Error(t, err)
}

func TestEventService_Update_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	newName := "Renamed"
	newSeats := 50
	patch := domain.UpdateEventInput{Name: &newName, TotalSeats: &newSeats}

	updated := &domain.Event{ID: "e1", Name: "Renamed", TotalSeats: 50, BookedSeats: 10}
	repo.EXPECT().Update(mock.Anything, "e1", patch).Return(updated, nil)

	event, err := svc.Update(context.Background(), "e1", patch)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", event.Name)
	assert.Equal(t, 50, event.TotalSeats)
}

func TestEventService_Update_EmptyName(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	empty := ""
	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{Name: &empty})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_NegativeSeats(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	seats := -5
	_, err := svc.Update(context.Background(), "e1", domain.UpdateEventInput{TotalSeats: &seats})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_CapacityBelowBooked(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	seats := 5
	patch := domain.UpdateEventInput{TotalSeats: &seats}
	repo.EXPECT().Update(mock.Anything, "e1", patch).Return(nil, domain.ErrCapacityBelowBooked)

	_, err := svc.Update(context.Background(), "e1", patch)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowBooked)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.UpdateEventInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	events := []*domain.Event{
		{ID: "e1", Name: "Event 1", TotalSeats: 10, BookedSeats: 8},
		{ID: "e2", Name: "Event 2", TotalSeats: 20},
	}
	repo.EXPECT().List(mock.Anything).Return(events, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 2, result[0].AvailableSeats())
}
