package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/logger"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/retry"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
)

// ErrNotConfigured means the channel's provider credentials are missing
var ErrNotConfigured = errors.New("delivery provider not configured")

// Sender delivers a code to one recipient on one channel
type Sender interface {
	Send(ctx context.Context, recipient, code string) error
}

// AccountGW dispatches verification codes directly or through NSQ
type AccountGW struct {
	mode      string
	senders   map[models.Channel]Sender
	publisher Publisher
	retrier   *retry.Retrier
}

// NewAccountGW creates the gateway for the configured notification mode.
// publisher is only used in queue mode and may be nil otherwise.
func NewAccountGW(cfg models.NotificationConfig, publisher Publisher) *AccountGW {
	return &AccountGW{
		mode: cfg.Mode,
		senders: map[models.Channel]Sender{
			models.ChannelEmail:   NewSMTPSender(cfg),
			models.ChannelContact: NewTwilioSender(cfg),
		},
		publisher: publisher,
		retrier: retry.New(retry.Config{
			MaxRetries:    cfg.MaxRetries,
			BaseDelay:     cfg.RetryDelay,
			Multiplier:    2,
			Jitter:        true,
			RetryableFunc: retry.Except(ErrNotConfigured, context.Canceled, context.DeadlineExceeded),
		}),
	}
}

// SendOTP hands the code off and reports whether that succeeded
func (g *AccountGW) SendOTP(ctx context.Context, channel models.Channel, recipient, code string) bool {
	var err error
	switch g.mode {
	case models.NotificationModeQueue:
		err = g.publish(channel, recipient, code)
	case models.NotificationModeLog:
		logCode(channel, recipient, code)
		return false
	default:
		err = g.Deliver(ctx, channel, recipient, code)
	}

	if err != nil {
		logger.Warn("Failed to send OTP",
			logger.Channel(channel),
			logger.String("mode", g.mode),
			logger.ErrorField(err),
		)
		return false
	}
	return true
}

// Deliver sends the code through the channel's provider, retrying transient
// failures. A provider without credentials logs the code and returns
// ErrNotConfigured.
func (g *AccountGW) Deliver(ctx context.Context, channel models.Channel, recipient, code string) error {
	sender, ok := g.senders[channel]
	if !ok {
		return fmt.Errorf("no sender for channel %q", channel)
	}

	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return sender.Send(ctx, recipient, code)
	})
	if errors.Is(err, ErrNotConfigured) {
		logCode(channel, recipient, code)
	}
	return err
}

func logCode(channel models.Channel, recipient, code string) {
	masked := utils.MaskPhoneNumber(recipient)
	if channel == models.ChannelEmail {
		masked = utils.MaskEmail(recipient)
	}
	logger.Info("OTP not sent, logging code instead",
		logger.Channel(channel),
		logger.String("recipient", masked),
		logger.String("otp_code", code),
	)
}
