package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrNotEnoughSeats      = errors.New("not enough available seats")
	ErrCapacityBelowBooked = errors.New("total seats cannot be lower than booked seats")
)

var (
	ErrValidation = errors.New("validation error")
)
