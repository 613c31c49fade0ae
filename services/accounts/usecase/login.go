package usecase

import (
	"context"
	"errors"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"golang.org/x/crypto/bcrypt"
)

// Login checks credentials. An account that is not verified on both channels
// gets fresh codes on its unverified channels, subject to the re-issue
// cooldown, and the result asks for verification.
func (u *AccountUC) Login(ctx context.Context, kind models.Kind, req *models.LoginRequest) (*models.LoginResult, error) {
	if !kind.Valid() {
		return nil, accounts.InvalidInput("unknown account kind")
	}
	if req.Email == "" || req.Password == "" {
		return nil, accounts.InvalidInput("email and password are required")
	}

	account, err := u.accountRepo.FindByEmail(ctx, kind, utils.NormalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	account.Kind = kind

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, accounts.ErrInvalidCredentials
		}
		return nil, err
	}

	if account.Loggable() {
		return &models.LoginResult{Account: account}, nil
	}

	for _, channel := range []models.Channel{models.ChannelEmail, models.ChannelContact} {
		if account.Verified(channel) {
			continue
		}
		if !u.claimReissueSlot(ctx, account, channel) {
			logger.Debug("OTP still fresh, not reissued", logger.Channel(channel), logger.AccountID(account.ID))
			continue
		}
		if _, err := u.reissue(ctx, account, channel); err != nil {
			return nil, err
		}
	}

	return &models.LoginResult{
		Account:              account,
		RequiresVerification: true,
		Email:                account.Email,
		Contact:              account.Contact,
	}, nil
}
