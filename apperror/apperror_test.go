package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(NewNotFound("Event not found")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(NewUnauthorized("you are not authorized")))
	assert.Equal(t, http.StatusBadRequest, StatusCode(NewValidation("Email already taken")))
	assert.Equal(t, http.StatusConflict, StatusCode(NewConflict("You have already booked this event")))
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestStatusCodeUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("list reviews: %w", NewNotFound("Review not found"))
	assert.Equal(t, http.StatusNotFound, StatusCode(wrapped))
}
