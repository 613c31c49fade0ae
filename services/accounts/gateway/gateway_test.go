package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"testing"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func stubSendMail(t *testing.T, err error) *[]recordedMail {
	t.Helper()
	var sent []recordedMail
	original := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, recordedMail{addr: addr, from: from, to: to, msg: string(msg)})
		return err
	}
	t.Cleanup(func() { sendMail = original })
	return &sent
}

type fakePublisher struct {
	topic   string
	message interface{}
	err     error
}

func (f *fakePublisher) Publish(topic string, message interface{}) error {
	f.topic = topic
	f.message = message
	return f.err
}

func smtpConfig() models.NotificationConfig {
	return models.NotificationConfig{
		Mode:         models.NotificationModeDirect,
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUsername: "noreply@example.com",
		SMTPPassword: "app-password",
	}
}

func TestSMTPSender_Send(t *testing.T) {
	sent := stubSendMail(t, nil)

	err := NewSMTPSender(smtpConfig()).Send(context.Background(), "asha@example.com", "123456")

	require.NoError(t, err)
	require.Len(t, *sent, 1)
	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, "noreply@example.com", mail.from)
	assert.Equal(t, []string{"asha@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "To: asha@example.com")
	assert.Contains(t, mail.msg, "Your email verification code is 123456")
}

func TestSMTPSender_NotConfigured(t *testing.T) {
	sent := stubSendMail(t, nil)
	cfg := smtpConfig()
	cfg.SMTPPassword = ""

	err := NewSMTPSender(cfg).Send(context.Background(), "asha@example.com", "123456")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, *sent)
}

func TestSMTPSender_RelayFailure(t *testing.T) {
	stubSendMail(t, errors.New("535 authentication failed"))

	err := NewSMTPSender(smtpConfig()).Send(context.Background(), "asha@example.com", "123456")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "smtp send failed")
}

type twilioCall struct {
	path     string
	user     string
	password string
	form     map[string]string
}

func newTwilioServer(t *testing.T, status int, call *twilioCall) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		call.path = r.URL.Path
		call.user, call.password, _ = r.BasicAuth()
		call.form = map[string]string{}
		for k := range r.PostForm {
			call.form[k] = r.PostForm.Get(k)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"sid":"SM1"}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func twilioConfig(baseURL string) models.NotificationConfig {
	return models.NotificationConfig{
		Mode:               models.NotificationModeDirect,
		TwilioBaseURL:      baseURL,
		TwilioAccountSID:   "AC123",
		TwilioAuthToken:    "token",
		TwilioFromNumber:   "+15005550006",
		DefaultCountryCode: "+91",
		Timeout:            time.Second,
	}
}

func TestTwilioSender_Send(t *testing.T) {
	var call twilioCall
	srv := newTwilioServer(t, http.StatusCreated, &call)

	err := NewTwilioSender(twilioConfig(srv.URL)).Send(context.Background(), "98765 43210", "654321")

	require.NoError(t, err)
	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", call.path)
	assert.Equal(t, "AC123", call.user)
	assert.Equal(t, "token", call.password)
	assert.Equal(t, "+919876543210", call.form["To"])
	assert.Equal(t, "+15005550006", call.form["From"])
	assert.Contains(t, call.form["Body"], "654321")
}

func TestTwilioSender_ProviderError(t *testing.T) {
	var call twilioCall
	srv := newTwilioServer(t, http.StatusBadRequest, &call)

	err := NewTwilioSender(twilioConfig(srv.URL)).Send(context.Background(), "+14155550100", "654321")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "twilio send failed")
}

func TestTwilioSender_NotConfigured(t *testing.T) {
	cfg := twilioConfig("http://127.0.0.1:1")
	cfg.TwilioAuthToken = ""

	err := NewTwilioSender(cfg).Send(context.Background(), "9876543210", "654321")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestAccountGW_SendOTP_Direct(t *testing.T) {
	sent := stubSendMail(t, nil)
	gw := NewAccountGW(smtpConfig(), nil)

	assert.True(t, gw.SendOTP(context.Background(), models.ChannelEmail, "asha@example.com", "111111"))
	assert.Len(t, *sent, 1)

	// no Twilio credentials: the code is logged and delivery reported as failed
	assert.False(t, gw.SendOTP(context.Background(), models.ChannelContact, "9876543210", "222222"))
}

func TestAccountGW_Deliver_NotConfigured(t *testing.T) {
	gw := NewAccountGW(models.NotificationConfig{Mode: models.NotificationModeDirect}, nil)

	err := gw.Deliver(context.Background(), models.ChannelEmail, "asha@example.com", "111111")
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = gw.Deliver(context.Background(), models.Channel("fax"), "x", "111111")
	assert.Error(t, err)
}

func TestAccountGW_SendOTP_Queue(t *testing.T) {
	pub := &fakePublisher{}
	gw := NewAccountGW(models.NotificationConfig{Mode: models.NotificationModeQueue}, pub)

	ok := gw.SendOTP(context.Background(), models.ChannelContact, "9876543210", "333333")

	assert.True(t, ok)
	assert.Equal(t, constants.TopicOTPSMS, pub.topic)
	assert.Equal(t, &models.OTPNotification{
		Channel:   models.ChannelContact,
		Recipient: "9876543210",
		Code:      "333333",
	}, pub.message)
}

func TestAccountGW_SendOTP_QueueFailure(t *testing.T) {
	pub := &fakePublisher{err: errors.New("nsqd unreachable")}
	gw := NewAccountGW(models.NotificationConfig{Mode: models.NotificationModeQueue}, pub)

	assert.False(t, gw.SendOTP(context.Background(), models.ChannelEmail, "asha@example.com", "444444"))
	assert.Equal(t, constants.TopicOTPEmail, pub.topic)

	noPublisher := NewAccountGW(models.NotificationConfig{Mode: models.NotificationModeQueue}, nil)
	assert.False(t, noPublisher.SendOTP(context.Background(), models.ChannelEmail, "asha@example.com", "444444"))
}

func TestAccountGW_SendOTP_LogMode(t *testing.T) {
	sent := stubSendMail(t, nil)
	gw := NewAccountGW(smtpConfig(), nil)
	gw.mode = models.NotificationModeLog

	assert.False(t, gw.SendOTP(context.Background(), models.ChannelEmail, "asha@example.com", "555555"))
	assert.Empty(t, *sent)
}

func TestAccountGW_Deliver_RetriesTransientFailure(t *testing.T) {
	calls := 0
	original := sendMail
	sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		calls++
		if calls == 1 {
			return errors.New("421 service not available")
		}
		return nil
	}
	t.Cleanup(func() { sendMail = original })

	cfg := smtpConfig()
	cfg.MaxRetries = 2
	cfg.RetryDelay = time.Millisecond
	gw := NewAccountGW(cfg, nil)

	err := gw.Deliver(context.Background(), models.ChannelEmail, "asha@example.com", "666666")

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestAccountGW_Deliver_NotConfiguredIsNotRetried(t *testing.T) {
	sent := stubSendMail(t, nil)
	cfg := models.NotificationConfig{Mode: models.NotificationModeDirect, MaxRetries: 3, RetryDelay: time.Millisecond}
	gw := NewAccountGW(cfg, nil)

	err := gw.Deliver(context.Background(), models.ChannelEmail, "asha@example.com", "777777")

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, *sent)
}
