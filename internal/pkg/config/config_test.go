package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "exam_session", cfg.Session.CookieName)
	assert.Equal(t, 60*time.Second, cfg.OTP.ReissueCooldown)
	assert.Equal(t, models.NotificationModeDirect, cfg.Notification.Mode)
	assert.Equal(t, "+91", cfg.Notification.DefaultCountryCode)
	assert.Equal(t, "smtp.gmail.com", cfg.Notification.SMTPHost)
	assert.Equal(t, 2, cfg.Notification.MaxRetries)
	assert.Equal(t, 200*time.Millisecond, cfg.Notification.RetryDelay)
	assert.Equal(t, 20, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Period)
	assert.Nil(t, cfg.NSQ.LookupdAddresses)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowOrigins)
}

func TestInitConfig_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("OTP_REISSUE_COOLDOWN", "30s")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("NSQ_LOOKUPD_ADDRESSES", "lookupd-1:4161, lookupd-2:4161,")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://exams.example.com,https://admin.example.com")

	cfg := InitConfig("")

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 30*time.Second, cfg.OTP.ReissueCooldown)
	assert.Equal(t, "noreply@example.com", cfg.Notification.EmailFrom)
	assert.Equal(t, []string{"lookupd-1:4161", "lookupd-2:4161"}, cfg.NSQ.LookupdAddresses)
	assert.Equal(t, []string{"https://exams.example.com", "https://admin.example.com"}, cfg.Server.AllowOrigins)
	assert.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		secret  string
		origins []string
		wantErr error
	}{
		{"local without secret", "local", "", nil, nil},
		{"production with secret", "production", "s3cret", []string{"https://exams.example.com"}, nil},
		{"production without secret", "production", "", nil, ErrMissingSessionSecret},
		{"staging without secret", "staging", "", nil, ErrMissingSessionSecret},
		{"wildcard origin", "local", "", []string{"https://exams.example.com", "*"}, ErrWildcardOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &models.Config{}
			cfg.App.Environment = tt.env
			cfg.Session.Secret = tt.secret
			cfg.Server.AllowOrigins = tt.origins

			err := Validate(cfg)

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInitConfig_LoadsDotEnvLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exam.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DATABASE=exam_local_test\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Cleanup(func() { os.Unsetenv("DB_DATABASE") })

	cfg := InitConfig(path)

	assert.Equal(t, "exam_local_test", cfg.Database.Database)
}

func TestDurationOrDefault(t *testing.T) {
	assert.Equal(t, time.Hour, DurationOrDefault(0, time.Hour))
	assert.Equal(t, time.Minute, DurationOrDefault(time.Minute, time.Hour))
}
