package usecase

import (
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts"
	"golang.org/x/crypto/bcrypt"
)

// AccountUC implements accounts.AccountUC
type AccountUC struct {
	accountRepo accounts.AccountRepo
	accountGW   accounts.AccountGW
	cfg         *models.Config

	now        func() time.Time
	generate   func() (string, error)
	bcryptCost int
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	accountGW accounts.AccountGW,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		accountGW:   accountGW,
		cfg:         cfg,
		now:         time.Now,
		generate:    utils.GenerateOTP,
		bcryptCost:  bcrypt.DefaultCost,
	}
}
