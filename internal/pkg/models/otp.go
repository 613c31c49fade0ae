package models

// RegisterRequest represents a self-registration or admin-created account
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Username string `json:"username,omitempty"`
}

// LoginRequest represents a credential login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest carries the codes typed by the user; either may be empty
type VerifyRequest struct {
	EmailOTP   string `json:"email_otp"`
	ContactOTP string `json:"contact_otp"`
}

// ResendRequest asks for a fresh code on one channel
type ResendRequest struct {
	Channel Channel `json:"channel"`
}

// ProfileUpdateRequest represents a student editing their own profile
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Contact  string `json:"contact"`
	Password string `json:"password,omitempty"`
}

// RegisterResult reports the created account and best-effort delivery outcomes
type RegisterResult struct {
	Account          *Account             `json:"account"`
	EmailDelivered   bool                 `json:"email_delivered"`
	ContactDelivered bool                 `json:"contact_delivered"`
	Pending          *PendingVerification `json:"-"`
}

// LoginResult is either a loggable account or a verification requirement
type LoginResult struct {
	Account              *Account `json:"-"`
	RequiresVerification bool     `json:"requires_verification"`
	Email                string   `json:"email,omitempty"`
	Contact              string   `json:"contact,omitempty"`
}

// ChannelStatus is the outcome of one channel within a verification attempt
type ChannelStatus struct {
	Channel  Channel `json:"channel"`
	Verified bool    `json:"verified"`
	Message  string  `json:"message,omitempty"`
	Err      error   `json:"-"`
}

// VerificationResult accumulates per-channel outcomes
type VerificationResult struct {
	Email         ChannelStatus `json:"email"`
	Contact       ChannelStatus `json:"contact"`
	FullyVerified bool          `json:"fully_verified"`
	Account       *Account      `json:"-"`
}

// ResendResult reports a resend outcome
type ResendResult struct {
	Channel         Channel `json:"channel"`
	Delivered       bool    `json:"delivered"`
	AlreadyVerified bool    `json:"already_verified"`
}

// OTPNotification is the queued form of an outbound code
type OTPNotification struct {
	Channel   Channel `json:"channel"`
	Recipient string  `json:"recipient"`
	Code      string  `json:"code"`
}
