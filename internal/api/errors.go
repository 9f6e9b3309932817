package api

import (
	"errors"
	"net/http"
)

// ErrUnauthorized matches (via errors.Is) any Error with a 401 status.
var ErrUnauthorized = errors.New("unauthorized")

// defaultMessage is used when the service provides no detail/message field or
// the body cannot be parsed.
const defaultMessage = "API error"

// Error is a failed API call. Message is the service-provided detail, already
// safe to show to the user.
type Error struct {
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
