package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bookingPayload struct {
	SessionID   int64    `json:"session_id" validate:"required,gt=0"`
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	PhoneNumber string   `json:"phone_number" validate:"required"`
	Seats       []string `json:"seats" validate:"required,min=1,dive,required"`
}

func TestValidateStructPassesOnValidPayload(t *testing.T) {
	errs := ValidateStruct(bookingPayload{
		SessionID:   1,
		Name:        "A",
		Email:       "a@x.com",
		PhoneNumber: "12345678",
		Seats:       []string{"A1"},
	})

	assert.Nil(t, errs)
}

func TestValidateStructReportsEveryFailedField(t *testing.T) {
	errs := ValidateStruct(bookingPayload{
		Email: "not-an-email",
		Seats: []string{},
	})

	assert.Contains(t, errs, "SessionID")
	assert.Contains(t, errs, "Name")
	assert.Contains(t, errs, "Email")
	assert.Contains(t, errs, "PhoneNumber")
	assert.Contains(t, errs, "Seats")
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "This field is required", errs["Name"])
}

func TestValidateStructRejectsBlankSeatLabel(t *testing.T) {
	errs := ValidateStruct(bookingPayload{
		SessionID:   1,
		Name:        "A",
		Email:       "a@x.com",
		PhoneNumber: "12345678",
		Seats:       []string{"A1", ""},
	})

	assert.NotEmpty(t, errs)
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})

	assert.Equal(t, "Email: Invalid email format", msg)
}
