package repository

import (
	"github.com/Eughami/cinema-dj-be/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie       MovieRepository
	Session     SessionRepository
	Booking     BookingRepository
	BookingSeat BookingSeatRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:       NewMovieRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingSeat: NewBookingSeatRepository(db, log),
	}
}
