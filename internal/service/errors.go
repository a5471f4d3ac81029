package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers wrong passwords and unknown client
	// identifiers during login.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrUnverified blocks logins on accounts that never confirmed their
	// email address.
	ErrUnverified = errors.New("account_not_verified")

	// ErrCodeExpired means the verification code's TTL has passed; the
	// account owner has to sign up again to get a fresh one.
	ErrCodeExpired = errors.New("verification_code_expired")

	// ErrCodeMismatch means the submitted code does not match the stored one.
	ErrCodeMismatch = errors.New("verification_code_mismatch")

	// ErrNotAccepting is returned when a recipient has switched off intake.
	ErrNotAccepting = errors.New("not_accepting_messages")

	// ErrSuggestUnavailable wraps upstream failures of the suggestion
	// provider so the transport layer can answer with a gateway error.
	ErrSuggestUnavailable = errors.New("suggestions_unavailable")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
