package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avdeenkov/seatbooker/internal/domain"
	"github.com/avdeenkov/seatbooker/internal/handler/dto"
	hmocks "github.com/avdeenkov/seatbooker/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockBookingSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(eventSvc, bookingSvc, userSvc)

	r := ginext.New("test")
	r.GET("/events", h.ListEvents)
	r.POST("/bookings", h.CreateBooking)
	r.POST("/login", h.Login)
	admin := r.Group("/admin")
	{
		admin.GET("/events", h.AdminListEvents)
		admin.POST("/events", h.AdminCreateEvent)
		admin.PUT("/events/:id", h.AdminUpdateEvent)
	}

	return eventSvc, bookingSvc, userSvc, r
}

// --- Public ---

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Name: "Concert", Type: "music", Date: "2026-10-01", Price: 25, TotalSeats: 10, BookedSeats: 8},
		{ID: "e2", Name: "Workshop", Type: "education", Date: "2026-11-01", TotalSeats: 20},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventAvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 2, resp[0].AvailableSeats)
	assert.Equal(t, 20, resp[1].AvailableSeats)
}

func TestHandler_ListEvents_InternalError(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	userID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    userID,
		Username:  "alice",
		Seats:     2,
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().Create(mock.Anything, domain.CreateBookingInput{
		EventID:  eventID,
		UserID:   userID,
		Username: "alice",
		Seats:    2,
	}).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		EventID:  eventID,
		UserID:   userID,
		Username: "alice",
		Seats:    2,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, booking.ID, resp.ID)
}

func TestHandler_CreateBooking_MissingFields(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"seats":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_InvalidEventID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"eventId":"not-a-uuid","userId":"` + uuid.New().String() + `","username":"alice","seats":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_NotEnoughSeats(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrNotEnoughSeats)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		EventID:  uuid.New().String(),
		UserID:   uuid.New().String(),
		Username: "alice",
		Seats:    3,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateBooking_EventNotFound(t *testing.T) {
	_, bookingSvc, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrEventNotFound)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		EventID:  uuid.New().String(),
		UserID:   uuid.New().String(),
		Username: "alice",
		Seats:    1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice", CreatedAt: time.Now()}
	userSvc.EXPECT().LoginOrCreate(mock.Anything, "alice").Return(user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, user.ID, resp.ID)
}

func TestHandler_Login_MissingUsername(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin ---

func TestHandler_AdminListEvents_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Name: "Event 1", CreatedAt: time.Now(), UpdatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.NotEmpty(t, resp[0].CreatedAt)
}

func TestHandler_AdminCreateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:         uuid.New().String(),
		Name:       "Concert",
		Type:       "music",
		Date:       "2026-10-01",
		Price:      25,
		TotalSeats: 100,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	eventSvc.EXPECT().Create(mock.Anything, domain.CreateEventInput{
		Name:       "Concert",
		Type:       "music",
		Date:       "2026-10-01",
		Price:      25,
		TotalSeats: 100,
	}).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Name:       "Concert",
		Type:       "music",
		Date:       "2026-10-01",
		Price:      25,
		TotalSeats: 100,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Concert", resp.Name)
}

func TestHandler_AdminCreateEvent_MissingName(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"type":"music","date":"2026-10-01"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AdminUpdateEvent_Success(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	updated := &domain.Event{ID: eventID, Name: "Renamed", TotalSeats: 50}
	eventSvc.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(updated, nil)

	body := []byte(`{"name":"Renamed","totalSeats":50}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Renamed", resp.Name)
	assert.Equal(t, 50, resp.TotalSeats)
}

func TestHandler_AdminUpdateEvent_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/events/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid event id", resp.Message)
}

func TestHandler_AdminUpdateEvent_CapacityBelowBooked(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(nil, domain.ErrCapacityBelowBooked)

	body := []byte(`{"totalSeats":1}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AdminUpdateEvent_NotFound(t *testing.T) {
	eventSvc, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Update(mock.Anything, eventID, mock.Anything).Return(nil, domain.ErrEventNotFound)

	body := []byte(`{"name":"Renamed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
