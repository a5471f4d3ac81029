package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// VerificationService confirms account ownership via emailed codes.
type VerificationService struct {
	Store store.Store
}

// Confirm checks the submitted code for the named account and marks the
// account verified on success. Verification is monotonic: confirming an
// already-verified account is a no-op.
//
// Returns:
//   - store.ErrNotFound when no such username exists
//   - ErrCodeExpired when the code's TTL has passed (checked before the
//     code itself, so a stale guess never reveals whether it matched)
//   - ErrCodeMismatch when the code is wrong
func (s *VerificationService) Confirm(ctx context.Context, username, code string) error {
	log := slogx.FromContext(ctx)
	now := time.Now().UTC()

	// 1. Resolve the account.
	account, err := s.Store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	// 2. Already verified: nothing to do.
	if account.Verified {
		return nil
	}

	// 3. Expiry wins over mismatch.
	if account.CodeExpired(now) {
		return ErrCodeExpired
	}

	// 4. Constant-time compare so timing doesn't leak code digits.
	if subtle.ConstantTimeCompare([]byte(account.VerifyCode), []byte(code)) != 1 {
		return ErrCodeMismatch
	}

	// 5. Flip the flag.
	if err := s.Store.Accounts().MarkVerified(ctx, account.ID); err != nil {
		return err
	}

	log.Info("account verified", "username", username)
	return nil
}
