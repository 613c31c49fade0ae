package exams

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("exam not found")
	ErrDuplicateExam = errors.New("exam name already exists")
	ErrInvalidInput  = errors.New("invalid input")
)

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
