package schedules

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("schedule not found")
	ErrUnknownExamOrSubject = errors.New("exam or subject not found")
	ErrInvalidInput         = errors.New("invalid input")
)

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
