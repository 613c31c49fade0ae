package gateway

import (
	"context"
	"fmt"
	"net/url"

	httpclient "github.com/chetanshingare9301/Exam-Management-System/internal/pkg/http"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/utils"
)

// TwilioSender delivers contact codes as SMS through the Twilio Messages API
type TwilioSender struct {
	client             *httpclient.Client
	accountSID         string
	authToken          string
	from               string
	defaultCountryCode string
}

// NewTwilioSender creates a Twilio sender
func NewTwilioSender(cfg models.NotificationConfig) *TwilioSender {
	return &TwilioSender{
		client: httpclient.NewClient(httpclient.Config{
			BaseURL:  cfg.TwilioBaseURL,
			Timeout:  cfg.Timeout,
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		accountSID:         cfg.TwilioAccountSID,
		authToken:          cfg.TwilioAuthToken,
		from:               cfg.TwilioFromNumber,
		defaultCountryCode: cfg.DefaultCountryCode,
	}
}

// Send texts the code to recipient
func (s *TwilioSender) Send(ctx context.Context, recipient, code string) error {
	if s.accountSID == "" || s.authToken == "" || s.from == "" {
		return ErrNotConfigured
	}

	to, err := utils.ToE164(recipient, s.defaultCountryCode)
	if err != nil {
		return err
	}

	values := url.Values{
		"To":   {to},
		"From": {s.from},
		"Body": {fmt.Sprintf("Your contact verification code is %s. It expires in %d minutes.",
			code, int(utils.OTPValidity.Minutes()))},
	}

	path := httpclient.JoinPath("2010-04-01", "Accounts", s.accountSID, "Messages.json")
	if _, err := s.client.PostForm(ctx, path, values); err != nil {
		return fmt.Errorf("twilio send failed: %w", err)
	}
	return nil
}
