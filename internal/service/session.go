package service

import (
	"context"
	"errors"
	"time"

	"github.com/lumenlab/whisperbox/internal/domain"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/cryptox"
	"github.com/lumenlab/whisperbox/pkg/idx"
	"github.com/lumenlab/whisperbox/pkg/jwtx"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// SessionService authenticates account owners and mints session tokens.
type SessionService struct {
	KeyManager *jwtx.KeyManager
	Store      store.Store
	Issuer     string
	SessionTTL time.Duration
}

// Login authenticates by username or email and returns a signed session.
//
// Returns:
//   - store.ErrNotFound when no account matches the identifier
//   - ErrUnverified when the account has not confirmed its email
//   - ErrInvalidCredentials when the password is wrong
func (s *SessionService) Login(ctx context.Context, identifier, password string) (*domain.Session, error) {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Resolve by username or email.
	account, err := s.Store.Accounts().GetByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}

	// 2. Check the password before the verified flag, so the two failure
	//    modes cost the same amount of work.
	if err := cryptox.VerifyPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 3. Unverified accounts cannot log in.
	if !account.Verified {
		return nil, ErrUnverified
	}

	// 4. Mint the session token. Claims are a snapshot; authorization
	//    re-reads the store.
	ttl := s.sessionTTL()
	claims := jwtx.NewSessionClaims(
		account.ID,
		idx.New().String(),
		account.Username,
		account.Verified,
		account.AcceptingMessages,
		ttl,
		s.Issuer,
		now,
	)

	signer := s.KeyManager.GetSigner()
	if signer == nil {
		return nil, errors.New("service: no signing key available")
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return nil, err
	}

	log.Info("session issued", "username", account.Username)

	return &domain.Session{
		AccessToken:       token,
		TokenType:         "Bearer",
		ExpiresIn:         int64(ttl.Seconds()),
		AccountID:         account.ID,
		Username:          account.Username,
		Verified:          account.Verified,
		AcceptingMessages: account.AcceptingMessages,
	}, nil
}

func (s *SessionService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}
