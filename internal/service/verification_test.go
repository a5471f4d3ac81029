package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("correct code verifies the account", func(t *testing.T) {
		st := newTestStore(t)
		res, mailer := register(t, st, "alice")

		svc := &service.VerificationService{Store: st}
		require.NoError(t, svc.Confirm(ctx, "alice", mailer.lastSent(t).Code))

		acct, err := st.Accounts().GetByID(ctx, res.Account.ID)
		require.NoError(t, err)
		require.True(t, acct.Verified)
	})

	t.Run("unknown username is not found", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.VerificationService{Store: st}
		require.ErrorIs(t, svc.Confirm(ctx, "ghost", "123456"), store.ErrNotFound)
	})

	t.Run("wrong code is a mismatch", func(t *testing.T) {
		st := newTestStore(t)
		res, _ := register(t, st, "bob")

		svc := &service.VerificationService{Store: st}
		wrong := "000000"
		if res.Account.VerifyCode == wrong {
			wrong = "000001"
		}
		require.ErrorIs(t, svc.Confirm(ctx, "bob", wrong), service.ErrCodeMismatch)
	})

	t.Run("expired beats mismatch", func(t *testing.T) {
		st := newTestStore(t)
		res, _ := register(t, st, "carol")

		// Force the stored expiry into the past
		require.NoError(t, st.Accounts().UpdateForResignup(ctx,
			res.Account.ID, res.Account.PasswordHash, res.Account.VerifyCode,
			time.Now().UTC().Add(-time.Minute)))

		svc := &service.VerificationService{Store: st}

		// Even the correct code reports expiry once the TTL is gone
		require.ErrorIs(t, svc.Confirm(ctx, "carol", res.Account.VerifyCode), service.ErrCodeExpired)

		// And so does a wrong one: expiry is checked first
		require.ErrorIs(t, svc.Confirm(ctx, "carol", "999999"), service.ErrCodeExpired)
	})

	t.Run("verification is monotonic", func(t *testing.T) {
		st := newTestStore(t)
		res, mailer := register(t, st, "dave")

		svc := &service.VerificationService{Store: st}
		code := mailer.lastSent(t).Code
		require.NoError(t, svc.Confirm(ctx, "dave", code))

		// A second confirm, even with garbage, stays verified
		require.NoError(t, svc.Confirm(ctx, "dave", "wrong!"))

		acct, err := st.Accounts().GetByID(ctx, res.Account.ID)
		require.NoError(t, err)
		require.True(t, acct.Verified)
	})
}
