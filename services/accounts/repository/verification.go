package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

// FindByCode retrieves the account whose channel identifier and pending code both match
func (r *AccountRepo) FindByCode(ctx context.Context, kind models.Kind, channel models.Channel, identifier, code string) (*models.Account, error) {
	c, err := columnsFor(channel)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, kind, fmt.Sprintf("%s = $1 AND %s = $2", c.identifier, c.otp), identifier, code)
}

// MarkVerified flips the channel flag and clears its code and expiry
func (r *AccountRepo) MarkVerified(ctx context.Context, kind models.Kind, channel models.Channel, id int64) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	c, err := columnsFor(channel)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = TRUE, %s = NULL, %s = NULL WHERE id = $1",
		t.name, c.verified, c.otp, c.expiresAt)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark %s verified: %w", channel, err)
	}
	return requireRow(result)
}

// SetOTP overwrites the channel's pending code and expiry
func (r *AccountRepo) SetOTP(ctx context.Context, kind models.Kind, channel models.Channel, id int64, code string, expiresAt time.Time) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}
	c, err := columnsFor(channel)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("UPDATE %s SET %s = $1, %s = $2 WHERE id = $3", t.name, c.otp, c.expiresAt)

	result, err := r.db.ExecContext(ctx, query, code, expiresAt, id)
	if err != nil {
		return fmt.Errorf("failed to set %s otp: %w", channel, err)
	}
	return requireRow(result)
}

// AcquireReissueSlot claims the re-issue window for a channel. It returns
// false while a previous claim is still live.
func (r *AccountRepo) AcquireReissueSlot(ctx context.Context, kind models.Kind, channel models.Channel, id int64, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf(constants.KeyOTPReissue, kind, channel, id)
	ok, err := r.redisClient.SetNX(ctx, key, time.Now().Unix(), ttl)
	if err != nil {
		return false, fmt.Errorf("failed to claim otp reissue slot: %w", err)
	}
	return ok, nil
}
