package subjects

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("subject or student not found")
	ErrDuplicateSubject = errors.New("subject already exists")
	ErrAlreadyAssigned  = errors.New("student is already assigned to this subject")
	ErrInvalidInput     = errors.New("invalid input")
)

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
