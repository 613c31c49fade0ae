package accounts

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound              = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidCode           = errors.New("invalid OTP or identifier")
	ErrExpired               = errors.New("OTP has expired")
	ErrCodeRequired          = errors.New("OTP is required")
	ErrDispatchFailed        = errors.New("failed to deliver verification code")
	ErrInvalidInput          = errors.New("invalid input")
	ErrNoPendingVerification = errors.New("no verification in progress")
	ErrDuplicate             = errors.New("identifier already in use")
)

// DuplicateIdentifierError names the field that collided with an existing account
type DuplicateIdentifierError struct {
	Field string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("an account with this %s already exists", e.Field)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return ErrDuplicate
}

// InvalidInput wraps ErrInvalidInput with a field-level reason
func InvalidInput(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, reason)
}
