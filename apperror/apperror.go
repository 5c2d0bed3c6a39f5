package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain error carrying the HTTP status it maps to at the boundary.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

func NewNotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

func NewUnauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

func NewValidation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NewConflict covers duplicate active bookings, repeated ratings and repeated
// same-direction votes.
func NewConflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// StatusCode resolves the HTTP status for any error. Non-domain errors map to 500.
func StatusCode(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
