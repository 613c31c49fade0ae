package usecase

import (
	"context"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
)

// dispatch hands a code to the gateway and logs a failed delivery
func (u *AccountUC) dispatch(ctx context.Context, account *models.Account, channel models.Channel, code string) bool {
	delivered := u.accountGW.SendOTP(ctx, channel, account.Identifier(channel), code)
	if !delivered {
		logger.Warn("OTP dispatch failed",
			logger.Kind(account.Kind),
			logger.Channel(channel),
			logger.AccountID(account.ID),
			logger.ErrorField(accounts.ErrDispatchFailed),
		)
	}
	return delivered
}

// reissue arms a channel with a fresh code, overwriting any pending one, and dispatches it
func (u *AccountUC) reissue(ctx context.Context, account *models.Account, channel models.Channel) (bool, error) {
	code, err := u.generate()
	if err != nil {
		return false, fmt.Errorf("failed to generate %s otp: %w", channel, err)
	}

	expiresAt := utils.OTPExpiryFrom(u.now())
	if err := u.accountRepo.SetOTP(ctx, account.Kind, channel, account.ID, code, expiresAt); err != nil {
		return false, err
	}
	account.SetOTP(channel, code, expiresAt)

	return u.dispatch(ctx, account, channel, code), nil
}

// claimReissueSlot starts the login re-issue cooldown for a channel. It
// reports whether the slot was free; with the cooldown disabled or Redis
// unavailable it always is.
func (u *AccountUC) claimReissueSlot(ctx context.Context, account *models.Account, channel models.Channel) bool {
	cooldown := u.cfg.OTP.ReissueCooldown
	if cooldown <= 0 {
		return true
	}

	ok, err := u.accountRepo.AcquireReissueSlot(ctx, account.Kind, channel, account.ID, cooldown)
	if err != nil {
		logger.Warn("OTP reissue cooldown unavailable",
			logger.Channel(channel),
			logger.AccountID(account.ID),
			logger.ErrorField(err),
		)
		return true
	}
	return ok
}
