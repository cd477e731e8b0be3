package entity

// Booking is write-once: created by the booking flow, never mutated by it.
type Booking struct {
	Base
	SessionID   int64  `db:"session_id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	PhoneNumber string `db:"phone_number"`
}
