package domain

import "time"

// Account is a registered identity that can receive anonymous messages.
// VerifyCode and VerifyCodeExpiry are only meaningful while Verified is
// false; housekeeping clears them once verification succeeds.
type Account struct {
	ID                string
	Username          string
	Email             string
	PasswordHash      string // argon2 encoded
	VerifyCode        string
	VerifyCodeExpiry  time.Time
	Verified          bool
	AcceptingMessages bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CodeExpired reports whether the verification code is past its expiry
// at the given instant.
func (a Account) CodeExpired(now time.Time) bool {
	return now.After(a.VerifyCodeExpiry)
}
