package models

import (
	"time"
)

// Kind distinguishes the two account populations
type Kind string

const (
	KindAdmin   Kind = "admin"
	KindStudent Kind = "student"
)

// Valid reports whether k names a known account kind
func (k Kind) Valid() bool {
	return k == KindAdmin || k == KindStudent
}

// Channel is an independently verified contact point
type Channel string

const (
	ChannelEmail   Channel = "email"
	ChannelContact Channel = "contact"
)

// Valid reports whether ch names a known channel
func (ch Channel) Valid() bool {
	return ch == ChannelEmail || ch == ChannelContact
}

// Account is an admin or student record with dual verification state
type Account struct {
	ID                  int64      `json:"id" db:"id"`
	Kind                Kind       `json:"role" db:"-"`
	Name                string     `json:"name" db:"name"`
	Email               string     `json:"email" db:"email"`
	Contact             string     `json:"contact" db:"contact"`
	Username            string     `json:"username,omitempty" db:"username"`
	PasswordHash        string     `json:"-" db:"password_hash"`
	EmailVerified       bool       `json:"is_email_verified" db:"is_email_verified"`
	EmailOTP            *string    `json:"-" db:"email_otp"`
	EmailOTPExpiresAt   *time.Time `json:"-" db:"email_otp_expires_at"`
	ContactVerified     bool       `json:"is_contact_verified" db:"is_contact_verified"`
	ContactOTP          *string    `json:"-" db:"contact_otp"`
	ContactOTPExpiresAt *time.Time `json:"-" db:"contact_otp_expires_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
}

// Loggable reports whether both channels are verified
func (a *Account) Loggable() bool {
	return a.EmailVerified && a.ContactVerified
}

// Verified returns the verification flag for a channel
func (a *Account) Verified(ch Channel) bool {
	if ch == ChannelEmail {
		return a.EmailVerified
	}
	return a.ContactVerified
}

// Identifier returns the address a channel delivers to
func (a *Account) Identifier(ch Channel) string {
	if ch == ChannelEmail {
		return a.Email
	}
	return a.Contact
}

// OTPExpiresAt returns the pending code expiry for a channel, nil when unarmed
func (a *Account) OTPExpiresAt(ch Channel) *time.Time {
	if ch == ChannelEmail {
		return a.EmailOTPExpiresAt
	}
	return a.ContactOTPExpiresAt
}

// SetOTP arms a channel with a code and expiry
func (a *Account) SetOTP(ch Channel, code string, expiresAt time.Time) {
	if ch == ChannelEmail {
		a.EmailOTP, a.EmailOTPExpiresAt = &code, &expiresAt
		return
	}
	a.ContactOTP, a.ContactOTPExpiresAt = &code, &expiresAt
}

// Principal derives the session identity for a loggable account
func (a *Account) Principal() *Principal {
	p := &Principal{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Kind,
	}
	if a.Kind == KindStudent {
		p.Username = a.Username
		p.Contact = a.Contact
	}
	return p
}

// ProfileUpdate carries the student fields that may change; nil means unchanged
type ProfileUpdate struct {
	Name         *string
	Username     *string
	Contact      *string
	PasswordHash *string
}

// Empty reports whether no field is set
func (u *ProfileUpdate) Empty() bool {
	return u.Name == nil && u.Username == nil && u.Contact == nil && u.PasswordHash == nil
}
