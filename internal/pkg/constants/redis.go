package constants

// Redis key formats
const (
	KeySession     = "session:%s"           // Format: session:{session_id}
	KeyOTPReissue  = "otp:reissue:%s:%s:%d" // Format: otp:reissue:{kind}:{channel}:{account_id}
	KeyRateLimit   = "rate:limit:%s:%s"     // Format: rate:limit:{route}:{ip}
	RateLimitScope = "auth"
)
