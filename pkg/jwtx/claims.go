package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime for dashboard session tokens.
const DefaultSessionTTL = 24 * time.Hour

// Claims are the session-token claims carried by an authenticated owner.
// The verified and accepting_messages fields are a snapshot taken at login;
// authorization-sensitive operations must re-read the store rather than
// trust them.
type Claims struct {
	jwt.RegisteredClaims

	// Session ID
	SID string `json:"sid,omitempty"`

	// Username of the authenticated account owner.
	Username string `json:"username,omitempty"`

	// Verified reports whether the account passed email verification
	// at the time of login. Always true for issued sessions since
	// verification is a login precondition.
	Verified bool `json:"verified,omitempty"`

	// AcceptingMessages is the acceptance flag at login time.
	AcceptingMessages bool `json:"accepting_messages,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for an owner session.
func NewSessionClaims(
	subject, sid string,
	username string,
	verified, acceptingMessages bool,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		SID:               sid,
		Username:          username,
		Verified:          verified,
		AcceptingMessages: acceptingMessages,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
