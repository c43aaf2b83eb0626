package apperr

import (
	"errors"
	"fmt"
)

// ErrBadURL is returned when an endpoint URL cannot be constructed.
var ErrBadURL = errors.New("bad url")

// ErrEncoding is returned when a request body fails to serialize.
var ErrEncoding = errors.New("encoding error")

// ErrTransport is returned on connectivity or timeout failures.
var ErrTransport = errors.New("transport error")

// ErrDecoding is returned when a response body does not match the expected shape.
var ErrDecoding = errors.New("decoding error")

// ErrUnauthorized is returned when the bearer token is missing or expired.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidTransition is returned when a status change violates the delivery state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrTransitionInFlight is returned when a transition for the same delivery is still unresolved.
var ErrTransitionInFlight = errors.New("transition already in flight")

// ServerError carries a non-2xx response or an explicit rejection from the API.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server rejected request: status %d", e.Status)
	}
	return fmt.Sprintf("server rejected request: status %d: %s", e.Status, e.Message)
}

// NewServerError builds a ServerError from an HTTP status and an optional message.
func NewServerError(status int, message string) error {
	return &ServerError{Status: status, Message: message}
}

// IsServerRejected reports whether err is a ServerError.
func IsServerRejected(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}
