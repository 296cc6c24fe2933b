package domain

import "time"

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Price       float64   `json:"price"`
	TotalSeats  int       `json:"totalSeats"`
	BookedSeats int       `json:"bookedSeats"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AvailableSeats is derived at read time and never stored.
func (e *Event) AvailableSeats() int {
	return e.TotalSeats - e.BookedSeats
}

type CreateEventInput struct {
	Name       string
	Type       string
	Date       string
	Price      float64
	TotalSeats int
}

// UpdateEventInput carries a partial patch: nil fields keep their prior value.
type UpdateEventInput struct {
	Name       *string
	Type       *string
	Date       *string
	Price      *float64
	TotalSeats *int
}
