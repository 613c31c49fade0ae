package notices

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("notice not found")
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
