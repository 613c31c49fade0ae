package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestGenerateOTP_Format(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, code)
	}
}

func TestGenerateOTP_Spread(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	// 200 draws from a million values should essentially never collide much
	assert.Greater(t, len(seen), 190)
}

func TestOTPExpiryFrom(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(5*time.Minute), OTPExpiryFrom(now))
}

func TestOTPExpired(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	expiresAt := OTPExpiryFrom(issued)

	assert.False(t, OTPExpired(&expiresAt, issued))
	assert.False(t, OTPExpired(&expiresAt, expiresAt))
	assert.True(t, OTPExpired(&expiresAt, expiresAt.Add(time.Nanosecond)))
	assert.True(t, OTPExpired(nil, issued))
}
