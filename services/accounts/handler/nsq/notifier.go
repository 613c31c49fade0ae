package nsq

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	nsqpkg "github.com/chetanshingare9301/Exam-Management-System/internal/pkg/nsq"
	"github.com/chetanshingare9301/Exam-Management-System/services/accounts/gateway"
)

const deliveryTimeout = 30 * time.Second

// Deliverer sends a code through the channel's provider
type Deliverer interface {
	Deliver(ctx context.Context, channel models.Channel, recipient, code string) error
}

// NotifierHandler delivers queued verification codes
type NotifierHandler struct {
	deliverer Deliverer
}

// NewNotifierHandler creates a new notifier handler
func NewNotifierHandler(deliverer Deliverer) *NotifierHandler {
	return &NotifierHandler{deliverer: deliverer}
}

// HandleOTP delivers one queued code. Malformed messages and unconfigured
// providers are dropped; provider failures are requeued.
func (h *NotifierHandler) HandleOTP(msg []byte) error {
	var notification models.OTPNotification
	if err := nsqpkg.UnmarshalMessage(msg, &notification); err != nil {
		logger.Error("Dropping malformed OTP notification", logger.ErrorField(err))
		return nil
	}
	if !notification.Channel.Valid() || notification.Recipient == "" {
		logger.Error("Dropping OTP notification without channel or recipient",
			logger.Channel(notification.Channel),
		)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	err := h.deliverer.Deliver(ctx, notification.Channel, notification.Recipient, notification.Code)
	switch {
	case err == nil:
		logger.Info("OTP delivered", logger.Channel(notification.Channel))
		return nil
	case errors.Is(err, gateway.ErrNotConfigured):
		return nil
	default:
		return fmt.Errorf("failed to deliver %s OTP: %w", notification.Channel, err)
	}
}
