package entity

// BookingSeat claims one seat for one session. SessionID is denormalized from
// the parent booking so the (session_id, seat) unique constraint can reject a
// second claim on the same seat.
type BookingSeat struct {
	Base
	BookingID int64  `db:"booking_id"`
	SessionID int64  `db:"session_id"`
	Seat      string `db:"seat"` // A1, A2, B1, etc.
}
