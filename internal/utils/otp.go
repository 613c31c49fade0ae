package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	// OTPLength is the number of digits in a verification code
	OTPLength = 6
	// OTPValidity is how long a freshly issued code stays valid
	OTPValidity = 5 * time.Minute
)

var otpUpperBound = big.NewInt(1_000_000)

// GenerateOTP returns a uniformly random, zero-padded 6-digit code
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpUpperBound)
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}

// OTPExpiryFrom returns the expiry for a code issued at now
func OTPExpiryFrom(now time.Time) time.Time {
	return now.Add(OTPValidity)
}

// OTPExpired reports whether a code with the given expiry is no longer valid at now.
// The boundary instant itself is still valid.
func OTPExpired(expiresAt *time.Time, now time.Time) bool {
	if expiresAt == nil {
		return true
	}
	return now.After(*expiresAt)
}
