package request

type CreateBookingRequest struct {
	SessionID   int64    `json:"session_id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Seats       []string `json:"seats" validate:"required,min=1,dive,required"`
}
