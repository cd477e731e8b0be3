package adaptor

import (
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

// MockSessionService mocks the session service
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) GetSessionSeats(ctx context.Context, sessionID int64) (*response.SessionSeatsResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SessionSeatsResponse), args.Error(1)
}

func (m *MockSessionService) GetSessions(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SessionResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.SessionResponse]), args.Error(1)
}

func newSessionRouter(svc usecase.SessionService) *chi.Mux {
	h := NewSessionHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/sessions", h.GetSessions)
	r.Get("/sessions/{id}/seats", h.GetSessionSeats)
	return r
}

func TestGetSessionSeatsHandlerSuccess(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("GetSessionSeats", mock.Anything, int64(1)).Return(&response.SessionSeatsResponse{
		Seats: []string{"A1", "B4"},
		SessionDetails: response.SessionResponse{
			ID:      1,
			MovieID: 3,
			HallNo:  2,
			Date:    "2026-09-12",
			Time:    "20:30",
		},
		MovieDetails: response.MovieResponse{
			ID:    3,
			Title: "Dune",
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sessions/1/seats", nil)
	rec := httptest.NewRecorder()
	newSessionRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []any{"A1", "B4"}, body["seats"])
	session := body["sessionDetails"].(map[string]any)
	assert.Equal(t, "20:30", session["time"])
	movie := body["movieDetails"].(map[string]any)
	assert.Equal(t, "Dune", movie["title"])
	svc.AssertExpectations(t)
}

func TestGetSessionSeatsHandlerNotFound(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("GetSessionSeats", mock.Anything, int64(42)).
		Return(nil, usecase.NewNotFoundError("Session 42 not found"))

	req := httptest.NewRequest(http.MethodGet, "/sessions/42/seats", nil)
	rec := httptest.NewRecorder()
	newSessionRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSessionSeatsHandlerInvalidID(t *testing.T) {
	svc := new(MockSessionService)

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/seats", nil)
	rec := httptest.NewRecorder()
	newSessionRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "GetSessionSeats", mock.Anything, mock.Anything)
}

func TestGetSessionsHandlerPagination(t *testing.T) {
	svc := new(MockSessionService)
	svc.On("GetSessions", mock.Anything, &request.PaginatedRequest{Page: 2, PerPage: 5}).
		Return(response.NewPaginatedResponse([]response.SessionResponse{{ID: 6}}, 2, 5, int64(6)), nil)

	req := httptest.NewRequest(http.MethodGet, "/sessions?page=2&per_page=5", nil)
	rec := httptest.NewRecorder()
	newSessionRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["status"])
	svc.AssertExpectations(t)
}
