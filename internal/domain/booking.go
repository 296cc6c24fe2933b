package domain

import "time"

type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateBookingInput struct {
	EventID  string
	UserID   string
	Username string
	Seats    int
}

// SeatDrift reports an event whose booked_seats counter disagrees with the
// sum of seats across its bookings.
type SeatDrift struct {
	EventID     string
	BookedSeats int
	ActualSeats int
}
