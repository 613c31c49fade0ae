package constants

// NSQ topics
const (
	TopicOTPEmail = "otp.email"
	TopicOTPSMS   = "otp.sms"
)

// NSQ channels
const (
	ChannelNotifier = "notifier"
)
