package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport failures: refused connections, resets, timeouts.
	ErrUnavailable = errors.New("teacher api unavailable")
	// ErrInvalidPayload marks responses whose body does not have the expected shape.
	ErrInvalidPayload = errors.New("invalid teacher api payload")
)

// StatusError is returned when the backend answers with a non-success HTTP status
// and no usable result envelope.
type StatusError struct {
	Operation string
	Code      int
	Message   string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Operation, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.Code, e.Message)
}

// IsStatus reports whether err is a StatusError carrying the given HTTP code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.Code == code
}
