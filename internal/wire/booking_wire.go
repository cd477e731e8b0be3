package wire

import (
	"github.com/Eughami/cinema-dj-be/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /book - reserve seats for a session
	r.Post("/book", bookingHandler.CreateBooking)

	// GET /verify-booking/{bookingId} - look up a booking with its session and movie
	r.Get("/verify-booking/{bookingId}", bookingHandler.VerifyBooking)
}
