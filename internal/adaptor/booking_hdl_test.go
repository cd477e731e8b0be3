package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/dto/response"
	"github.com/Eughami/cinema-dj-be/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockBookingService mocks the booking service
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingSummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingSummary), args.Error(1)
}

func (m *MockBookingService) VerifyBooking(ctx context.Context, bookingID int64) (*response.VerifyBookingResponse, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VerifyBookingResponse), args.Error(1)
}

func newBookingRouter(svc usecase.BookingService) *chi.Mux {
	h := NewBookingHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Post("/book", h.CreateBooking)
	r.Get("/verify-booking/{bookingId}", h.VerifyBooking)
	return r
}

func postBook(t *testing.T, router http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingHandlerSuccess(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).Return(&response.BookingSummary{
		BookingID:   7,
		Name:        "A",
		Email:       "a@x.com",
		PhoneNumber: "12345678",
		SessionID:   1,
		Seats:       []string{"A1", "A2"},
	}, nil)

	rec := postBook(t, newBookingRouter(svc), map[string]any{
		"session_id":   1,
		"name":         "A",
		"email":        "a@x.com",
		"phone_number": "12345678",
		"seats":        []string{"A1", "A2"},
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.CreateBookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(7), body.BookingSummary.BookingID)
	assert.Equal(t, []string{"A1", "A2"}, body.BookingSummary.Seats)
	svc.AssertExpectations(t)
}

func TestCreateBookingHandlerValidationFailure(t *testing.T) {
	svc := new(MockBookingService)
	router := newBookingRouter(svc)

	// empty seat list, bad email, missing name
	rec := postBook(t, router, map[string]any{
		"session_id":   1,
		"email":        "not-an-email",
		"phone_number": "12345678",
		"seats":        []string{},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["status"])
	fields := body["errors"].(map[string]any)
	assert.Contains(t, fields, "Seats")
	assert.Contains(t, fields, "Email")
	assert.Contains(t, fields, "Name")

	// validation failures must not reach the service
	svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestCreateBookingHandlerSeatConflict(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, usecase.NewSeatConflictError([]string{"A2"}))

	rec := postBook(t, newBookingRouter(svc), map[string]any{
		"session_id":   1,
		"name":         "B",
		"email":        "b@x.com",
		"phone_number": "12345678",
		"seats":        []string{"A2", "A3"},
	})

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errs := body["errors"].(map[string]any)
	assert.Equal(t, "SEAT_CONFLICT", errs["code"])
	assert.Equal(t, []any{"A2"}, errs["seats"])
}

func TestCreateBookingHandlerUnknownSession(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, usecase.NewNotFoundError("Session 42 not found"))

	rec := postBook(t, newBookingRouter(svc), map[string]any{
		"session_id":   42,
		"name":         "B",
		"email":        "b@x.com",
		"phone_number": "12345678",
		"seats":        []string{"A1"},
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBookingHandlerStoreFailure(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("CreateBooking", mock.Anything, mock.Anything).
		Return(nil, usecase.NewStoreError("Booking could not be completed", assert.AnError))

	rec := postBook(t, newBookingRouter(svc), map[string]any{
		"session_id":   1,
		"name":         "B",
		"email":        "b@x.com",
		"phone_number": "12345678",
		"seats":        []string{"A1"},
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	errs := body["errors"].(map[string]any)
	assert.Equal(t, "STORE_UNAVAILABLE", errs["code"])
}

func TestVerifyBookingHandlerSuccess(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("VerifyBooking", mock.Anything, int64(7)).Return(&response.VerifyBookingResponse{
		Booking: response.BookingSummary{
			BookingID: 7,
			SessionID: 1,
			Seats:     []string{"A1"},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/verify-booking/7", nil)
	rec := httptest.NewRecorder()
	newBookingRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.VerifyBookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.Booking.BookingID)
	svc.AssertExpectations(t)
}

func TestVerifyBookingHandlerInvalidID(t *testing.T) {
	svc := new(MockBookingService)

	req := httptest.NewRequest(http.MethodGet, "/verify-booking/abc", nil)
	rec := httptest.NewRecorder()
	newBookingRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "VerifyBooking", mock.Anything, mock.Anything)
}

func TestVerifyBookingHandlerNotFound(t *testing.T) {
	svc := new(MockBookingService)
	svc.On("VerifyBooking", mock.Anything, int64(99)).
		Return(nil, usecase.NewNotFoundError("Booking 99 not found"))

	req := httptest.NewRequest(http.MethodGet, "/verify-booking/99", nil)
	rec := httptest.NewRecorder()
	newBookingRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
