package dashboard

import (
	"errors"
	"strings"
)

var (
	// ErrActionInFlight is returned when the same action is submitted again before it settles.
	ErrActionInFlight = errors.New("action already in progress")
	// ErrNotLoggedIn is returned by operations that need the teacher's session.
	ErrNotLoggedIn = errors.New("no teacher session")
)

// ValidationError is a local rejection; no request was sent.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RejectedError carries a failure reported by the backend.
type RejectedError struct {
	Action  Action
	Message string
}

func (e *RejectedError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return string(e.Action) + " rejected"
	}
	return string(e.Action) + " rejected: " + e.Message
}

// IsValidation reports whether err is a local validation rejection.
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsRejected reports whether err is a backend rejection.
func IsRejected(err error) bool {
	var rejectedErr *RejectedError
	return errors.As(err, &rejectedErr)
}
