package models

// Principal is the authenticated identity carried by a session
type Principal struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Kind   `json:"role"`
	Username string `json:"username,omitempty"`
	Contact  string `json:"contact,omitempty"`
}

// PendingVerification remembers which account is mid-verification
type PendingVerification struct {
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Kind    Kind   `json:"kind"`
}
