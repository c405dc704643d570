// Package apperr defines the error taxonomy shared by the console layers.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork indicates the backend could not be reached or returned an unusable response.
	ErrNetwork = errors.New("network error")

	// ErrAuth indicates a missing, invalid, or expired session token.
	ErrAuth = errors.New("authentication required")

	// ErrActionFailed indicates the backend rejected a state-changing call.
	ErrActionFailed = errors.New("action failed")

	// ErrActionInProgress indicates an action is already pending for the same item.
	ErrActionInProgress = errors.New("action already in progress")

	// ErrValidation indicates input was rejected before any remote call.
	ErrValidation = errors.New("validation failed")
)

// RemoteError carries the details of a failed backend call.
type RemoteError struct {
	Kind       error
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" && e.StatusCode != 0 {
		msg = fmt.Sprintf("status %d", e.StatusCode)
	}
	if msg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Kind, msg)
}

func (e *RemoteError) Unwrap() error {
	return e.Kind
}

// Validation builds an ErrValidation with a formatted reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// IsAuth reports whether err ends the session.
func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}
