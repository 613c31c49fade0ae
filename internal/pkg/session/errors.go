package session

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means the request carries no usable session
	ErrSessionNotFound = errors.New("session not found")
	// ErrUnauthenticated means no principal is attached to the request
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden means the principal's role does not match the route
	ErrForbidden = errors.New("access denied")
)

// GateError pairs a gate failure with the page the client should go to
type GateError struct {
	Err      error
	Redirect string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("%v (redirect to %s)", e.Err, e.Redirect)
}

func (e *GateError) Unwrap() error {
	return e.Err
}
