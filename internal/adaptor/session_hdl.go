package adaptor

import (
	"net/http"

	"github.com/Eughami/cinema-dj-be/internal/dto/request"
	"github.com/Eughami/cinema-dj-be/internal/usecase"
	"github.com/Eughami/cinema-dj-be/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// GetSessionSeats handles GET /sessions/{id}/seats
func (h *SessionHandler) GetSessionSeats(w http.ResponseWriter, r *http.Request) {
	sessionID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Session ID must be a positive number", nil)
		return
	}

	seats, err := h.service.GetSessionSeats(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, h.log, err, "get session seats")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, seats)
}

// GetSessions handles GET /sessions
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	sessions, err := h.service.GetSessions(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}
