package response

import (
	"github.com/Eughami/cinema-dj-be/internal/data/entity"
)

type BookingSummary struct {
	BookingID   int64    `json:"booking_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	SessionID   int64    `json:"session_id"`
	Seats       []string `json:"seats"`
}

// CreateBookingResponse is the POST /book success body.
type CreateBookingResponse struct {
	Success        bool           `json:"success"`
	BookingSummary BookingSummary `json:"bookingSummary"`
}

// VerifyBookingResponse joins a booking with its session and movie detail.
type VerifyBookingResponse struct {
	Booking        BookingSummary  `json:"booking"`
	SessionDetails SessionResponse `json:"sessionDetails"`
	MovieDetails   MovieResponse   `json:"movieDetails"`
}

func BookingToSummary(booking *entity.Booking, seats []string) BookingSummary {
	return BookingSummary{
		BookingID:   booking.ID,
		Name:        booking.Name,
		Email:       booking.Email,
		PhoneNumber: booking.PhoneNumber,
		SessionID:   booking.SessionID,
		Seats:       seats,
	}
}
