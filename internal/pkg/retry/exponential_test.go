package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errTransient = errors.New("connection reset")

func fastConfig(retries int) Config {
	return Config{MaxRetries: retries, BaseDelay: time.Millisecond, Multiplier: 2}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := New(fastConfig(2)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errTransient
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_GivesUp(t *testing.T) {
	calls := 0
	err := New(fastConfig(2)).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return errTransient
	})

	assert.ErrorIs(t, err, errTransient)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_NoRetriesReturnsErrorUnwrapped(t *testing.T) {
	err := New(fastConfig(0)).Execute(context.Background(), func(ctx context.Context) error {
		return errTransient
	})
	assert.Equal(t, errTransient, err)
}

func TestExecute_FinalErrorStopsImmediately(t *testing.T) {
	final := errors.New("not configured")
	cfg := fastConfig(5)
	cfg.RetryableFunc = Except(final)

	calls := 0
	err := New(cfg).Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return final
	})

	assert.Equal(t, final, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := New(fastConfig(3)).Execute(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestCalculateDelay_Capped(t *testing.T) {
	r := New(Config{BaseDelay: time.Second, MaxDelay: 3 * time.Second, Multiplier: 2})

	assert.Equal(t, time.Second, r.calculateDelay(0))
	assert.Equal(t, 2*time.Second, r.calculateDelay(1))
	assert.Equal(t, 3*time.Second, r.calculateDelay(5))
}
