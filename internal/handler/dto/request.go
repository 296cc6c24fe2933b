package dto

type CreateBookingRequest struct {
	EventID  string `json:"eventId" binding:"required,uuid"`
	UserID   string `json:"userId" binding:"required,uuid"`
	Username string `json:"username" binding:"required"`
	Seats    int    `json:"seats" binding:"required,gt=0"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
}

type CreateEventRequest struct {
	Name       string  `json:"name" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	TotalSeats int     `json:"totalSeats" binding:"gte=0"`
}

// UpdateEventRequest is a partial patch: omitted fields keep their prior value.
type UpdateEventRequest struct {
	Name       *string  `json:"name"`
	Type       *string  `json:"type"`
	Date       *string  `json:"date"`
	Price      *float64 `json:"price"`
	TotalSeats *int     `json:"totalSeats"`
}
