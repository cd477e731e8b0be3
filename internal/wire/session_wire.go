package wire

import (
	"github.com/Eughami/cinema-dj-be/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSession(r chi.Router, sessionHandler *adaptor.SessionHandler) {
	// GET /sessions - list sessions
	r.Get("/sessions", sessionHandler.GetSessions)

	// GET /sessions/{id}/seats - claimed seats plus session and movie detail
	r.Get("/sessions/{id}/seats", sessionHandler.GetSessionSeats)
}
