package adaptor

import (
	"github.com/Eughami/cinema-dj-be/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Session *SessionHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Session: NewSessionHandler(service.Session, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
