package accounts

import (
	"context"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/accounts AccountRepo

// AccountRepo is the credential store for admins and students
type AccountRepo interface {
	FindByEmail(ctx context.Context, kind models.Kind, email string) (*models.Account, error)
	FindByContact(ctx context.Context, kind models.Kind, contact string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByID(ctx context.Context, kind models.Kind, id int64) (*models.Account, error)
	// FindByCode matches the channel identifier and its pending code together
	FindByCode(ctx context.Context, kind models.Kind, channel models.Channel, identifier, code string) (*models.Account, error)
	Insert(ctx context.Context, kind models.Kind, account *models.Account) error

	// Verification state
	MarkVerified(ctx context.Context, kind models.Kind, channel models.Channel, id int64) error
	SetOTP(ctx context.Context, kind models.Kind, channel models.Channel, id int64, code string, expiresAt time.Time) error
	AcquireReissueSlot(ctx context.Context, kind models.Kind, channel models.Channel, id int64, ttl time.Duration) (bool, error)

	// Student management
	ListStudents(ctx context.Context) ([]*models.Account, error)
	UpdateProfile(ctx context.Context, id int64, update *models.ProfileUpdate) error
}
