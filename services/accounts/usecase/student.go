package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"golang.org/x/crypto/bcrypt"
)

// ListStudents returns all students
func (u *AccountUC) ListStudents(ctx context.Context) ([]*models.Account, error) {
	return u.accountRepo.ListStudents(ctx)
}

// GetProfile returns a student's own account
func (u *AccountUC) GetProfile(ctx context.Context, id int64) (*models.Account, error) {
	return u.accountRepo.FindByID(ctx, models.KindStudent, id)
}

// UpdateProfile edits a student's name, username, contact and optionally password
func (u *AccountUC) UpdateProfile(ctx context.Context, id int64, req *models.ProfileUpdateRequest) (*models.Account, error) {
	update := &models.ProfileUpdate{}

	if name := strings.TrimSpace(req.Name); name != "" {
		update.Name = &name
	}

	if username := strings.TrimSpace(req.Username); username != "" {
		if !utils.IsValidUsername(username) {
			return nil, accounts.InvalidInput("username is invalid")
		}
		if err := u.ensureNotTaken(ctx, id, "username", func() (*models.Account, error) {
			return u.accountRepo.FindByUsername(ctx, username)
		}); err != nil {
			return nil, err
		}
		update.Username = &username
	}

	if contact := utils.CleanContact(req.Contact); contact != "" {
		if !utils.IsValidPhoneNumber(contact) {
			return nil, accounts.InvalidInput("contact is invalid")
		}
		if err := u.ensureNotTaken(ctx, id, "contact", func() (*models.Account, error) {
			return u.accountRepo.FindByContact(ctx, models.KindStudent, contact)
		}); err != nil {
			return nil, err
		}
		update.Contact = &contact
	}

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		update.PasswordHash = &hashed
	}

	if update.Empty() {
		return nil, accounts.InvalidInput("no fields to update")
	}

	if err := u.accountRepo.UpdateProfile(ctx, id, update); err != nil {
		return nil, err
	}
	return u.accountRepo.FindByID(ctx, models.KindStudent, id)
}

// ensureNotTaken fails when another student already holds the value
func (u *AccountUC) ensureNotTaken(ctx context.Context, id int64, field string, find func() (*models.Account, error)) error {
	existing, err := find()
	if err != nil {
		if errors.Is(err, accounts.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check %s uniqueness: %w", field, err)
	}
	if existing.ID != id {
		return &accounts.DuplicateIdentifierError{Field: field}
	}
	return nil
}
