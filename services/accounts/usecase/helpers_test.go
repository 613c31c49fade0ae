package usecase

import (
	"testing"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	uc   *AccountUC
	repo *mocks.MockAccountRepo
	gw   *mocks.MockAccountGW
}

// newTestUC wires the usecase with mocks, a fixed clock and a code sequence
func newTestUC(t *testing.T, cooldown time.Duration, codes ...string) *testDeps {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockAccountRepo(ctrl)
	gw := mocks.NewMockAccountGW(ctrl)
	cfg := &models.Config{OTP: models.OTPConfig{ReissueCooldown: cooldown}}

	uc := NewAccountUC(repo, gw, cfg)
	uc.now = func() time.Time { return fixedNow }
	uc.bcryptCost = bcrypt.MinCost

	next := 0
	uc.generate = func() (string, error) {
		require.Less(t, next, len(codes), "unexpected code generation")
		code := codes[next]
		next++
		return code, nil
	}

	return &testDeps{uc: uc, repo: repo, gw: gw}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
