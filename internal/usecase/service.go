package usecase

import (
	"github.com/Eughami/cinema-dj-be/internal/data/repository"
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Session SessionService
	Booking BookingService
}

func NewService(db database.PgxIface, repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, log),
		Session: NewSessionService(db, repo, log),
		Booking: NewBookingService(db, repo, log),
	}
}
