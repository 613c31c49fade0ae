package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
)

// FindByEmail retrieves an account by email
func (r *AccountRepo) FindByEmail(ctx context.Context, kind models.Kind, email string) (*models.Account, error) {
	return r.findOne(ctx, kind, "email = $1", email)
}

// FindByContact retrieves an account by contact number
func (r *AccountRepo) FindByContact(ctx context.Context, kind models.Kind, contact string) (*models.Account, error) {
	return r.findOne(ctx, kind, "contact = $1", contact)
}

// FindByUsername retrieves a student by username
func (r *AccountRepo) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.findOne(ctx, models.KindStudent, "username = $1", username)
}

// FindByID retrieves an account by id
func (r *AccountRepo) FindByID(ctx context.Context, kind models.Kind, id int64) (*models.Account, error) {
	return r.findOne(ctx, kind, "id = $1", id)
}

func (r *AccountRepo) findOne(ctx context.Context, kind models.Kind, where string, args ...interface{}) (*models.Account, error) {
	t, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s", t.columns, t.name, where)

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", kind, err)
	}

	account.Kind = kind
	return &account, nil
}

// Insert creates the account and fills in its id and creation time
func (r *AccountRepo) Insert(ctx context.Context, kind models.Kind, account *models.Account) error {
	t, err := tableFor(kind)
	if err != nil {
		return err
	}

	columns := []string{"name", "email", "contact"}
	args := []interface{}{account.Name, account.Email, account.Contact}
	if kind == models.KindStudent {
		columns = append(columns, "username")
		args = append(args, account.Username)
	}
	columns = append(columns,
		"password_hash",
		"is_email_verified", "email_otp", "email_otp_expires_at",
		"is_contact_verified", "contact_otp", "contact_otp_expires_at",
	)
	args = append(args,
		account.PasswordHash,
		account.EmailVerified, account.EmailOTP, account.EmailOTPExpiresAt,
		account.ContactVerified, account.ContactOTP, account.ContactOTPExpiresAt,
	)

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id, created_at",
		t.name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&account.ID, &account.CreatedAt); err != nil {
		if dup := duplicateFromConstraint(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to create %s: %w", kind, err)
	}

	account.Kind = kind
	return nil
}

// ListStudents returns every student, newest first
func (r *AccountRepo) ListStudents(ctx context.Context) ([]*models.Account, error) {
	t := accountTables[models.KindStudent]
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY created_at DESC", t.columns, t.name)

	students := []*models.Account{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	for _, s := range students {
		s.Kind = models.KindStudent
	}
	return students, nil
}

// UpdateProfile applies the set fields of update to a student
func (r *AccountRepo) UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) error {
	var sets []string
	var args []interface{}
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("name", update.Name)
	add("username", update.Username)
	add("contact", update.Contact)
	add("password_hash", update.PasswordHash)
	if len(sets) == 0 {
		return accounts.InvalidInput("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE students SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if dup := duplicateFromConstraint(err); dup != nil {
			return dup
		}
		return fmt.Errorf("failed to update student profile: %w", err)
	}
	return requireRow(result)
}

// duplicateFromConstraint maps a unique violation to the colliding field
func duplicateFromConstraint(err error) error {
	constraint, ok := database.UniqueViolation(err)
	if !ok {
		return nil
	}
	for _, field := range []string{"email", "contact", "username"} {
		if strings.HasSuffix(constraint, "_"+field+"_key") {
			return &accounts.DuplicateIdentifierError{Field: field}
		}
	}
	return &accounts.DuplicateIdentifierError{Field: "identifier"}
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return accounts.ErrNotFound
	}
	return nil
}
