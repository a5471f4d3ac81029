package service_test

import (
	"context"
	"testing"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newSessionService(t *testing.T, st store.Store) *service.SessionService {
	t.Helper()

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  "https://whisperbox.test",
		NumKeys: 1,
	})
	require.NoError(t, err)

	return &service.SessionService{
		KeyManager: km,
		Store:      st,
		Issuer:     "https://whisperbox.test",
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues session for verified account", func(t *testing.T) {
		st := newTestStore(t)
		res := registerVerified(t, st, "alice")
		svc := newSessionService(t, st)

		sess, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)
		require.Equal(t, "Bearer", sess.TokenType)
		require.Equal(t, res.Account.ID, sess.AccountID)
		require.NotEmpty(t, sess.AccessToken)

		// Token claims round-trip through the verifier
		claims, err := svc.KeyManager.Verifier.Verify(sess.AccessToken)
		require.NoError(t, err)
		require.Equal(t, res.Account.ID, claims.Subject)
		require.Equal(t, "alice", claims.Username)
		require.True(t, claims.Verified)
		require.True(t, claims.AcceptingMessages)
	})

	t.Run("email works as login identifier", func(t *testing.T) {
		st := newTestStore(t)
		registerVerified(t, st, "bob")
		svc := newSessionService(t, st)

		_, err := svc.Login(ctx, "bob@example.com", "hunter22")
		require.NoError(t, err)
	})

	t.Run("unknown identifier is not found", func(t *testing.T) {
		st := newTestStore(t)
		svc := newSessionService(t, st)

		_, err := svc.Login(ctx, "ghost", "hunter22")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("wrong password is invalid credentials", func(t *testing.T) {
		st := newTestStore(t)
		registerVerified(t, st, "carol")
		svc := newSessionService(t, st)

		_, err := svc.Login(ctx, "carol", "wrong-password")
		require.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unverified account cannot log in", func(t *testing.T) {
		st := newTestStore(t)
		register(t, st, "dave")
		svc := newSessionService(t, st)

		_, err := svc.Login(ctx, "dave", "hunter22")
		require.ErrorIs(t, err, service.ErrUnverified)
	})

	t.Run("claims are a snapshot, store is authoritative", func(t *testing.T) {
		st := newTestStore(t)
		res := registerVerified(t, st, "erin")
		svc := newSessionService(t, st)

		sess, err := svc.Login(ctx, "erin", "hunter22")
		require.NoError(t, err)
		require.True(t, sess.AcceptingMessages)

		// Flip acceptance after login; the old token still verifies but
		// a live read sees the new state.
		acceptance := &service.AcceptanceService{Store: st}
		require.NoError(t, acceptance.Set(ctx, res.Account.ID, false))

		claims, err := svc.KeyManager.Verifier.Verify(sess.AccessToken)
		require.NoError(t, err)
		require.True(t, claims.AcceptingMessages) // stale snapshot

		live, err := acceptance.Get(ctx, res.Account.ID)
		require.NoError(t, err)
		require.False(t, live)
	})
}

func TestAcceptance(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	res := registerVerified(t, st, "frank")
	svc := &service.AcceptanceService{Store: st}

	t.Run("defaults to accepting", func(t *testing.T) {
		ok, err := svc.Get(ctx, res.Account.ID)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("set round-trips", func(t *testing.T) {
		require.NoError(t, svc.Set(ctx, res.Account.ID, false))

		ok, err := svc.Get(ctx, res.Account.ID)
		require.NoError(t, err)
		require.False(t, ok)

		require.NoError(t, svc.Set(ctx, res.Account.ID, true))

		ok, err = svc.Get(ctx, res.Account.ID)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("unknown account is not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, svc.Set(ctx, "nope", true), store.ErrNotFound)
	})
}
