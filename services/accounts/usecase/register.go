package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"golang.org/x/crypto/bcrypt"
)

// Register creates an unverified account, arms both channels and dispatches
// the two codes. Delivery failures are reported in the result, not as errors.
func (u *AccountUC) Register(ctx context.Context, kind models.Kind, req *models.RegisterRequest) (*models.RegisterResult, error) {
	if err := normalizeRegistration(kind, req); err != nil {
		return nil, err
	}

	if err := u.ensureUnique(ctx, kind, req); err != nil {
		return nil, err
	}

	account, err := u.newAccount(kind, req)
	if err != nil {
		return nil, err
	}

	emailCode, err := u.generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate email otp: %w", err)
	}
	contactCode, err := u.generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact otp: %w", err)
	}

	expiresAt := utils.OTPExpiryFrom(u.now())
	account.SetOTP(models.ChannelEmail, emailCode, expiresAt)
	account.SetOTP(models.ChannelContact, contactCode, expiresAt)

	if err := u.accountRepo.Insert(ctx, kind, account); err != nil {
		return nil, err
	}

	logger.Info("Account registered",
		logger.Kind(kind),
		logger.AccountID(account.ID),
		logger.String("email", utils.MaskEmail(account.Email)),
	)

	u.claimReissueSlot(ctx, account, models.ChannelEmail)
	u.claimReissueSlot(ctx, account, models.ChannelContact)

	emailDelivered := u.dispatch(ctx, account, models.ChannelEmail, emailCode)
	contactDelivered := u.dispatch(ctx, account, models.ChannelContact, contactCode)

	return &models.RegisterResult{
		Account:          account,
		EmailDelivered:   emailDelivered,
		ContactDelivered: contactDelivered,
		Pending: &models.PendingVerification{
			Email:   account.Email,
			Contact: account.Contact,
			Kind:    kind,
		},
	}, nil
}

// AddStudent creates a student on behalf of an admin. The account starts
// unverified with no codes armed; the student arms them by logging in.
func (u *AccountUC) AddStudent(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	if err := normalizeRegistration(models.KindStudent, req); err != nil {
		return nil, err
	}

	if err := u.ensureUnique(ctx, models.KindStudent, req); err != nil {
		return nil, err
	}

	account, err := u.newAccount(models.KindStudent, req)
	if err != nil {
		return nil, err
	}

	if err := u.accountRepo.Insert(ctx, models.KindStudent, account); err != nil {
		return nil, err
	}

	logger.Info("Student added by admin", logger.AccountID(account.ID))
	return account, nil
}

func (u *AccountUC) newAccount(kind models.Kind, req *models.RegisterRequest) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		Kind:         kind,
		Name:         req.Name,
		Email:        req.Email,
		Contact:      req.Contact,
		PasswordHash: string(hash),
	}
	if kind == models.KindStudent {
		account.Username = req.Username
	}
	return account, nil
}

type uniqueCheck struct {
	field string
	find  func() (*models.Account, error)
}

// ensureUnique checks every identifier of the kind before insert. The table
// constraints still decide races between concurrent registrations.
func (u *AccountUC) ensureUnique(ctx context.Context, kind models.Kind, req *models.RegisterRequest) error {
	checks := []uniqueCheck{
		{"email", func() (*models.Account, error) { return u.accountRepo.FindByEmail(ctx, kind, req.Email) }},
		{"contact", func() (*models.Account, error) { return u.accountRepo.FindByContact(ctx, kind, req.Contact) }},
	}
	if kind == models.KindStudent {
		checks = append(checks, uniqueCheck{"username", func() (*models.Account, error) {
			return u.accountRepo.FindByUsername(ctx, req.Username)
		}})
	}

	for _, check := range checks {
		_, err := check.find()
		if err == nil {
			return &accounts.DuplicateIdentifierError{Field: check.field}
		}
		if !errors.Is(err, accounts.ErrNotFound) {
			return fmt.Errorf("failed to check %s uniqueness: %w", check.field, err)
		}
	}
	return nil
}
