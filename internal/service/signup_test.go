package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified account and emails code", func(t *testing.T) {
		st := newTestStore(t)
		res, mailer := register(t, st, "alice")

		require.False(t, res.Account.Verified)
		require.True(t, res.Account.AcceptingMessages)
		require.Len(t, res.Account.VerifyCode, 6)

		sent := mailer.lastSent(t)
		require.Equal(t, "alice@example.com", sent.To)
		require.Equal(t, res.Account.VerifyCode, sent.Code)
	})

	t.Run("mail failure does not roll back the account", func(t *testing.T) {
		st := newTestStore(t)
		mailer := &stubMailer{fail: true}
		svc := &service.SignupService{Store: st, Mailer: mailer}

		res, err := svc.Register(ctx, "bob", "bob@example.com", "hunter22")
		require.NoError(t, err)
		require.False(t, res.EmailDelivered)

		_, err = st.Accounts().GetByUsername(ctx, "bob")
		require.NoError(t, err)
	})

	t.Run("verified duplicate username conflicts", func(t *testing.T) {
		st := newTestStore(t)
		registerVerified(t, st, "carol")

		svc := &service.SignupService{Store: st, Mailer: &stubMailer{}}
		_, err := svc.Register(ctx, "carol", "other@example.com", "hunter22")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("verified duplicate email conflicts", func(t *testing.T) {
		st := newTestStore(t)
		registerVerified(t, st, "dave")

		svc := &service.SignupService{Store: st, Mailer: &stubMailer{}}
		_, err := svc.Register(ctx, "dave2", "dave@example.com", "hunter22")
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("unverified email can re-sign-up with fresh code", func(t *testing.T) {
		st := newTestStore(t)
		first, _ := register(t, st, "erin")

		mailer := &stubMailer{}
		svc := &service.SignupService{Store: st, Mailer: mailer, CodeTTL: 10 * time.Minute}
		res, err := svc.Register(ctx, "erin", "erin@example.com", "newpassword")
		require.NoError(t, err)

		// Same account row, refreshed credentials
		require.Equal(t, first.Account.ID, res.Account.ID)
		require.NotEqual(t, first.Account.PasswordHash, res.Account.PasswordHash)

		stored, err := st.Accounts().GetByID(ctx, first.Account.ID)
		require.NoError(t, err)
		require.Equal(t, mailer.lastSent(t).Code, stored.VerifyCode)
	})

	t.Run("rejects bad inputs", func(t *testing.T) {
		st := newTestStore(t)
		svc := &service.SignupService{Store: st, Mailer: &stubMailer{}}

		cases := []struct {
			name               string
			username, email    string
			password           string
		}{
			{"short username", "a", "a@example.com", "hunter22"},
			{"username with spaces", "has space", "x@example.com", "hunter22"},
			{"bad email", "frank", "not-an-email", "hunter22"},
			{"short password", "frank", "frank@example.com", "12345"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.Register(ctx, tc.username, tc.email, tc.password)
				require.True(t, service.IsValidation(err), "expected validation error, got %v", err)
			})
		}
	})
}

func TestCheckUsernameAvailable(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &service.SignupService{Store: st, Mailer: &stubMailer{}}

	t.Run("free username is available", func(t *testing.T) {
		ok, err := svc.CheckUsernameAvailable(ctx, "unclaimed")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unverified holder does not block", func(t *testing.T) {
		register(t, st, "pending")

		ok, err := svc.CheckUsernameAvailable(ctx, "pending")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("verified holder blocks", func(t *testing.T) {
		registerVerified(t, st, "taken")

		ok, err := svc.CheckUsernameAvailable(ctx, "taken")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("invalid username is rejected", func(t *testing.T) {
		_, err := svc.CheckUsernameAvailable(ctx, "no good")
		require.True(t, service.IsValidation(err))
	})
}
