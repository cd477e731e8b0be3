package usecase

import (
	"fmt"
	"strings"
)

// ErrorCode distinguishes failure kinds for callers. Handlers map codes to
// HTTP statuses; clients branch on the code, never on the message text.
type ErrorCode string

const (
	CodeValidation       ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeSeatConflict     ErrorCode = "SEAT_CONFLICT"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
)

// Error is the service-level error. Fields carries field-level validation
// detail; Seats carries the seats that lost a claim race.
type Error struct {
	Code    ErrorCode
	Message string
	Fields  map[string]string
	Seats   []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewValidationError(fields map[string]string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

func NewNotFoundError(message string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: message,
	}
}

func NewSeatConflictError(seats []string) *Error {
	return &Error{
		Code:    CodeSeatConflict,
		Message: fmt.Sprintf("Seat %s already booked for this session", strings.Join(seats, ", ")),
		Seats:   seats,
	}
}

func NewStoreError(message string, cause error) *Error {
	return &Error{
		Code:    CodeStoreUnavailable,
		Message: message,
		cause:   cause,
	}
}
