package questions

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("question not found")
	ErrDuplicateQuestion = errors.New("question text already exists")
	ErrInvalidInput      = errors.New("invalid input")
)

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
