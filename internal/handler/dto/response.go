package dto

import (
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
)

type EventResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Price       float64 `json:"price"`
	TotalSeats  int     `json:"totalSeats"`
	BookedSeats int     `json:"bookedSeats"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type EventAvailabilityResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Date           string  `json:"date"`
	Price          float64 `json:"price"`
	TotalSeats     int     `json:"totalSeats"`
	BookedSeats    int     `json:"bookedSeats"`
	AvailableSeats int     `json:"availableSeats"`
}

type BookingCreatedResponse struct {
	ID string `json:"id"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		Date:        e.Date,
		Price:       e.Price,
		TotalSeats:  e.TotalSeats,
		BookedSeats: e.BookedSeats,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToEventAvailabilityResponse(e *domain.Event) EventAvailabilityResponse {
	return EventAvailabilityResponse{
		ID:             e.ID,
		Name:           e.Name,
		Type:           e.Type,
		Date:           e.Date,
		Price:          e.Price,
		TotalSeats:     e.TotalSeats,
		BookedSeats:    e.BookedSeats,
		AvailableSeats: e.AvailableSeats(),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
	}
}
