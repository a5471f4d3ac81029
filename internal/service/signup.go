package service

import (
	"context"
	"errors"
	"net/mail"
	"regexp"
	"time"

	"github.com/lumenlab/whisperbox/internal/domain"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/cryptox"
	"github.com/lumenlab/whisperbox/pkg/idx"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// DefaultCodeTTL is how long a verification code stays valid.
const DefaultCodeTTL = 10 * time.Minute

const verifyCodeDigits = 6

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{2,20}$`)

// Mailer delivers verification codes. Delivery failures are soft: they are
// reported to the caller but never roll back the account.
type Mailer interface {
	SendVerificationCode(ctx context.Context, to, username, code string) error
}

// SignupService registers identities and hands out verification codes.
type SignupService struct {
	Store   store.Store
	Mailer  Mailer
	CodeTTL time.Duration
}

// RegisterResult reports the outcome of a sign-up.
type RegisterResult struct {
	Account domain.Account

	// EmailDelivered is false when the verification email could not be
	// sent. The account still exists; the owner can sign up again to
	// trigger a fresh code.
	EmailDelivered bool
}

// Register creates a new unverified account, or refreshes the credentials of
// an existing unverified one so an abandoned sign-up can be retried with the
// same username or email.
//
// Returns:
//   - store.ErrAlreadyExists when the username or email belongs to a
//     verified account
//   - *ValidationError when an input field is rejected
func (s *SignupService) Register(ctx context.Context, username, email, password string) (*RegisterResult, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Validate inputs before touching the store.
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	// 2. A verified account owns its username outright.
	if existing, err := s.Store.Accounts().GetByUsername(ctx, username); err == nil {
		if existing.Verified {
			return nil, store.ErrAlreadyExists
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	code, err := cryptox.GenerateNumericCode(verifyCodeDigits)
	if err != nil {
		return nil, err
	}
	expiry := now.Add(s.codeTTL())

	account := domain.Account{
		ID:                idx.New().String(),
		Username:          username,
		Email:             email,
		PasswordHash:      hash,
		VerifyCode:        code,
		VerifyCodeExpiry:  expiry,
		Verified:          false,
		AcceptingMessages: true,
	}

	// 3. Reuse an abandoned sign-up with the same email: fresh hash,
	//    fresh code, same account row. A verified account wins outright.
	existing, err := s.Store.Accounts().GetByEmail(ctx, email)
	switch {
	case err == nil && existing.Verified:
		return nil, store.ErrAlreadyExists

	case err == nil:
		if err := s.Store.Accounts().UpdateForResignup(ctx, existing.ID, hash, code, expiry); err != nil {
			return nil, err
		}
		account = existing
		account.PasswordHash = hash
		account.VerifyCode = code
		account.VerifyCodeExpiry = expiry

	case errors.Is(err, store.ErrNotFound):
		if err := s.Store.Accounts().Create(ctx, account); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	// 4. Send the code. Failure is soft: the account stays, the caller
	//    learns delivery didn't happen.
	delivered := true
	if err := s.Mailer.SendVerificationCode(ctx, email, username, code); err != nil {
		delivered = false
		log.Warn("verification email failed", "username", username, "err", err)
	}

	return &RegisterResult{Account: account, EmailDelivered: delivered}, nil
}

// CheckUsernameAvailable reports whether a username can still be claimed.
// Unverified holders don't count: their claim lapses until they verify.
func (s *SignupService) CheckUsernameAvailable(ctx context.Context, username string) (bool, error) {
	if err := validateUsername(username); err != nil {
		return false, err
	}

	existing, err := s.Store.Accounts().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return !existing.Verified, nil
}

func (s *SignupService) codeTTL() time.Duration {
	if s.CodeTTL > 0 {
		return s.CodeTTL
	}
	return DefaultCodeTTL
}

func validateUsername(username string) error {
	if !usernameRe.MatchString(username) {
		return &ValidationError{Field: "username", Reason: "must be 2-20 letters, digits or underscores"}
	}
	return nil
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &ValidationError{Field: "email", Reason: "invalid email address"}
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}
