package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads the .env file when running locally and builds the
// configuration from environment variables.
func InitConfig(configPath string) *models.Config {
	if GetEnv("APP_ENV", "local") == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "exam-management")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_VERSION", "development")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", "15s")
	v.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_IDLE_CONNS", 2)
	v.SetDefault("DB_RUN_MIGRATIONS", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NSQD_ADDRESS", "localhost:4150")
	v.SetDefault("NSQ_CHANNEL", "notifier")

	v.SetDefault("JWT_ISSUER", "exam-management")
	v.SetDefault("SESSION_COOKIE_NAME", "exam_session")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_SECURE", false)

	v.SetDefault("OTP_REISSUE_COOLDOWN", "60s")

	v.SetDefault("NOTIFICATION_MODE", models.NotificationModeDirect)
	v.SetDefault("SMTP_HOST", "smtp.gmail.com")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com")
	v.SetDefault("DEFAULT_COUNTRY_CODE", "+91")
	v.SetDefault("NOTIFICATION_TIMEOUT", "10s")
	v.SetDefault("NOTIFICATION_MAX_RETRIES", 2)
	v.SetDefault("NOTIFICATION_RETRY_DELAY", "200ms")

	v.SetDefault("RATE_LIMIT_REQUESTS", 20)
	v.SetDefault("RATE_LIMIT_PERIOD", "1m")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE_PATH", "")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetDuration("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetDuration("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetDuration("SERVER_SHUTDOWN_TIMEOUT")
	configs.Server.AllowOrigins = splitList(v.GetString("CORS_ALLOW_ORIGINS"))

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.RunMigrations = v.GetBool("DB_RUN_MIGRATIONS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.NSQDAddress = v.GetString("NSQD_ADDRESS")
	configs.NSQ.LookupdAddresses = splitList(v.GetString("NSQ_LOOKUPD_ADDRESSES"))
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// Session config, signed with the JWT secret
	configs.Session.Secret = v.GetString("JWT_SECRET")
	configs.Session.Issuer = v.GetString("JWT_ISSUER")
	configs.Session.CookieName = v.GetString("SESSION_COOKIE_NAME")
	configs.Session.TTL = v.GetDuration("SESSION_TTL")
	configs.Session.Secure = v.GetBool("SESSION_SECURE")

	// OTP config
	configs.OTP.ReissueCooldown = v.GetDuration("OTP_REISSUE_COOLDOWN")

	// Notification config
	configs.Notification.Mode = v.GetString("NOTIFICATION_MODE")
	configs.Notification.SMTPHost = v.GetString("SMTP_HOST")
	configs.Notification.SMTPPort = v.GetInt("SMTP_PORT")
	configs.Notification.SMTPUsername = v.GetString("EMAIL_USER")
	configs.Notification.SMTPPassword = v.GetString("EMAIL_PASS")
	configs.Notification.EmailFrom = v.GetString("EMAIL_FROM")
	if configs.Notification.EmailFrom == "" {
		configs.Notification.EmailFrom = configs.Notification.SMTPUsername
	}
	configs.Notification.TwilioBaseURL = v.GetString("TWILIO_BASE_URL")
	configs.Notification.TwilioAccountSID = v.GetString("TWILIO_ACCOUNT_SID")
	configs.Notification.TwilioAuthToken = v.GetString("TWILIO_AUTH_TOKEN")
	configs.Notification.TwilioFromNumber = v.GetString("TWILIO_PHONE_NUMBER")
	configs.Notification.DefaultCountryCode = v.GetString("DEFAULT_COUNTRY_CODE")
	configs.Notification.Timeout = v.GetDuration("NOTIFICATION_TIMEOUT")
	configs.Notification.MaxRetries = v.GetInt("NOTIFICATION_MAX_RETRIES")
	configs.Notification.RetryDelay = v.GetDuration("NOTIFICATION_RETRY_DELAY")

	// Rate limit config
	configs.RateLimit.Limit = v.GetInt("RATE_LIMIT_REQUESTS")
	configs.RateLimit.Period = v.GetDuration("RATE_LIMIT_PERIOD")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

var (
	ErrMissingSessionSecret = errors.New("JWT_SECRET must be set outside the local environment")
	ErrWildcardOrigin       = errors.New("CORS_ALLOW_ORIGINS cannot contain * because the session cookie is sent with credentials")
)

// Validate rejects configurations the service must not start with
func Validate(cfg *models.Config) error {
	if cfg.App.Environment != "local" && cfg.Session.Secret == "" {
		return ErrMissingSessionSecret
	}
	for _, origin := range cfg.Server.AllowOrigins {
		if origin == "*" {
			return fmt.Errorf("invalid CORS_ALLOW_ORIGINS: %w", ErrWildcardOrigin)
		}
	}
	return nil
}

// GetEnv returns an environment variable or the default when unset
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DurationOrDefault returns d, or def when d is not positive
func DurationOrDefault(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}
