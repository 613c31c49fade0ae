package usecase

import (
	"context"
	"errors"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
)

// VerifyCode verifies one channel. An unknown identifier and a wrong code
// both yield ErrInvalidCode. An expired code is left in place.
func (u *AccountUC) VerifyCode(ctx context.Context, kind models.Kind, channel models.Channel, identifier, code string) error {
	if !kind.Valid() || !channel.Valid() {
		return accounts.InvalidInput("unknown account kind or channel")
	}
	if code == "" {
		return accounts.ErrInvalidCode
	}

	account, err := u.accountRepo.FindByCode(ctx, kind, channel, normalizeIdentifier(channel, identifier), code)
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return accounts.ErrInvalidCode
		}
		return err
	}

	if utils.OTPExpired(account.OTPExpiresAt(channel), u.now()) {
		return accounts.ErrExpired
	}

	if err := u.accountRepo.MarkVerified(ctx, kind, channel, account.ID); err != nil {
		return err
	}

	logger.Info("Channel verified", logger.Kind(kind), logger.Channel(channel), logger.AccountID(account.ID))
	return nil
}

// CompleteVerification verifies each still-unverified channel of the pending
// account with the code supplied for it. Outcomes accumulate per channel and
// a failure on one never blocks the other.
func (u *AccountUC) CompleteVerification(ctx context.Context, pending *models.PendingVerification, emailCode, contactCode string) (*models.VerificationResult, error) {
	if pending == nil || pending.Email == "" {
		return nil, accounts.ErrNoPendingVerification
	}

	account, err := u.accountRepo.FindByEmail(ctx, pending.Kind, pending.Email)
	if err != nil {
		return nil, err
	}
	account.Kind = pending.Kind

	codes := map[models.Channel]string{
		models.ChannelEmail:   emailCode,
		models.ChannelContact: contactCode,
	}

	result := &models.VerificationResult{}
	for _, channel := range []models.Channel{models.ChannelEmail, models.ChannelContact} {
		status, err := u.verifyChannel(ctx, account, channel, codes[channel])
		if err != nil {
			return nil, err
		}
		if status.Verified {
			markVerified(account, channel)
		}
		if channel == models.ChannelEmail {
			result.Email = status
		} else {
			result.Contact = status
		}
	}

	result.FullyVerified = account.Loggable()
	if result.FullyVerified {
		result.Account = account
	}
	return result, nil
}

// verifyChannel returns an error only for collaborator failures
func (u *AccountUC) verifyChannel(ctx context.Context, account *models.Account, channel models.Channel, code string) (models.ChannelStatus, error) {
	status := models.ChannelStatus{Channel: channel}

	switch {
	case account.Verified(channel):
		status.Verified = true
		status.Message = "already verified"
	case code == "":
		status.Err = accounts.ErrCodeRequired
		status.Message = accounts.ErrCodeRequired.Error()
	default:
		err := u.VerifyCode(ctx, account.Kind, channel, account.Identifier(channel), code)
		switch {
		case err == nil:
			status.Verified = true
			status.Message = "verified"
		case errors.Is(err, accounts.ErrInvalidCode), errors.Is(err, accounts.ErrExpired):
			status.Err = err
			status.Message = err.Error()
		default:
			return status, err
		}
	}
	return status, nil
}

func markVerified(account *models.Account, channel models.Channel) {
	if channel == models.ChannelEmail {
		account.EmailVerified, account.EmailOTP, account.EmailOTPExpiresAt = true, nil, nil
		return
	}
	account.ContactVerified, account.ContactOTP, account.ContactOTPExpiresAt = true, nil, nil
}

// Resend arms a channel with a fresh code regardless of any cooldown. A
// channel that is already verified is left alone.
func (u *AccountUC) Resend(ctx context.Context, kind models.Kind, channel models.Channel, identifier string) (*models.ResendResult, error) {
	if !kind.Valid() || !channel.Valid() {
		return nil, accounts.InvalidInput("unknown account kind or channel")
	}

	identifier = normalizeIdentifier(channel, identifier)

	var account *models.Account
	var err error
	if channel == models.ChannelEmail {
		account, err = u.accountRepo.FindByEmail(ctx, kind, identifier)
	} else {
		account, err = u.accountRepo.FindByContact(ctx, kind, identifier)
	}
	if err != nil {
		return nil, err
	}
	account.Kind = kind

	result := &models.ResendResult{Channel: channel}
	if account.Verified(channel) {
		result.AlreadyVerified = true
		return result, nil
	}

	u.claimReissueSlot(ctx, account, channel)
	delivered, err := u.reissue(ctx, account, channel)
	if err != nil {
		return nil, err
	}
	result.Delivered = delivered
	return result, nil
}
