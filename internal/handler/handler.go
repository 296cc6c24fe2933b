package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
}

type UserSvc interface {
	LoginOrCreate(ctx context.Context, username string) (*domain.User, error)
}

type Handler struct {
	eventService   EventSvc
	bookingService BookingSvc
	userService    UserSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, userService UserSvc) *Handler {
	return &Handler{
		eventService:   eventService,
		bookingService: bookingService,
		userService:    userService,
	}
}

// Public

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventAvailabilityResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventAvailabilityResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateBookingInput{
		EventID:  req.EventID,
		UserID:   req.UserID,
		Username: req.Username,
		Seats:    req.Seats,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.BookingCreatedResponse{ID: booking.ID})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	user, err := h.userService.LoginOrCreate(c.Request.Context(), req.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Admin

func (h *Handler) AdminListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AdminCreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateEventInput{
		Name:       req.Name,
		Type:       req.Type,
		Date:       req.Date,
		Price:      req.Price,
		TotalSeats: req.TotalSeats,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) AdminUpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Name:       req.Name,
		Type:       req.Type,
		Date:       req.Date,
		Price:      req.Price,
		TotalSeats: req.TotalSeats,
	}

	event, err := h.eventService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotEnoughSeats),
		errors.Is(err, domain.ErrCapacityBelowBooked):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
	}
}
