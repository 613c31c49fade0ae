package accounts

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/accounts AccountUC

// AccountUC is the dual-channel verification engine plus student account management
type AccountUC interface {
	// Registration and login
	Register(ctx context.Context, kind models.Kind, req *models.RegisterRequest) (*models.RegisterResult, error)
	Login(ctx context.Context, kind models.Kind, req *models.LoginRequest) (*models.LoginResult, error)

	// Verification
	VerifyCode(ctx context.Context, kind models.Kind, channel models.Channel, identifier, code string) error
	CompleteVerification(ctx context.Context, pending *models.PendingVerification, emailCode, contactCode string) (*models.VerificationResult, error)
	Resend(ctx context.Context, kind models.Kind, channel models.Channel, identifier string) (*models.ResendResult, error)

	// Students
	AddStudent(ctx context.Context, req *models.RegisterRequest) (*models.Account, error)
	ListStudents(ctx context.Context) ([]*models.Account, error)
	GetProfile(ctx context.Context, id int64) (*models.Account, error)
	UpdateProfile(ctx context.Context, id int64, req *models.ProfileUpdateRequest) (*models.Account, error)
}
