package accounts

import (
	"context"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/chetanshingare9301/Exam-Management-System/services/accounts AccountGW

// AccountGW delivers verification codes. SendOTP reports whether the code
// was handed off; failures are never returned as errors.
type AccountGW interface {
	SendOTP(ctx context.Context, channel models.Channel, recipient, code string) bool
}
