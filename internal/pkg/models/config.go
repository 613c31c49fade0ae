package models

import "time"

// Config represents application configuration
type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	NSQ          NSQConfig
	Session      SessionConfig
	OTP          OTPConfig
	Notification NotificationConfig
	RateLimit    RateLimitConfig
	Logger       LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowOrigins    []string
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	Database      string
	SSLMode       string
	MaxConns      int
	IdleConns     int
	RunMigrations bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress      string
	LookupdAddresses []string
	Channel          string
}

// SessionConfig controls the signed session cookie and its server-side record
type SessionConfig struct {
	Secret     string
	Issuer     string
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// OTPConfig contains verification code tuning
type OTPConfig struct {
	// ReissueCooldown suppresses login-triggered re-issue for a channel that
	// was armed within the window. Zero re-issues on every login.
	ReissueCooldown time.Duration
}

// Notification delivery modes
const (
	NotificationModeDirect = "direct"
	NotificationModeQueue  = "nsq"
	NotificationModeLog    = "log"
)

// NotificationConfig contains OTP delivery settings
type NotificationConfig struct {
	Mode               string
	SMTPHost           string
	SMTPPort           int
	SMTPUsername       string
	SMTPPassword       string
	EmailFrom          string
	TwilioBaseURL      string
	TwilioAccountSID   string
	TwilioAuthToken    string
	TwilioFromNumber   string
	DefaultCountryCode string
	Timeout            time.Duration
	MaxRetries         int
	RetryDelay         time.Duration
}

// RateLimitConfig contains settings for the public auth endpoints limiter
type RateLimitConfig struct {
	Limit  int
	Period time.Duration
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
