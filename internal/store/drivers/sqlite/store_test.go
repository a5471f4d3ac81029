package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lumenlab/whisperbox/internal/domain"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/internal/store/drivers/sqlite"
	"github.com/lumenlab/whisperbox/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a file-backed database in a temp dir. A file DSN keeps
// every pooled connection pointed at the same database, which :memory: does
// not guarantee.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	s, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())

	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newTestAccount(t *testing.T) domain.Account {
	t.Helper()

	id := idx.New().String()
	return domain.Account{
		ID:               id,
		Username:         "user-" + id,
		Email:            "user-" + id + "@example.com",
		PasswordHash:     "$argon2id$fake$hash",
		VerifyCode:       "123456",
		VerifyCodeExpiry: time.Now().UTC().Add(10 * time.Minute),
	}
}

func TestAccountsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("create and fetch", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		got, err := s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, a.Username, got.Username)
		require.Equal(t, a.Email, got.Email)
		require.False(t, got.Verified)
		require.True(t, got.AcceptingMessages)
		require.False(t, got.CreatedAt.IsZero())

		byName, err := s.Accounts().GetByUsername(ctx, a.Username)
		require.NoError(t, err)
		require.Equal(t, a.ID, byName.ID)

		byEmail, err := s.Accounts().GetByEmail(ctx, a.Email)
		require.NoError(t, err)
		require.Equal(t, a.ID, byEmail.ID)
	})

	t.Run("get by login resolves username or email", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		byName, err := s.Accounts().GetByLogin(ctx, a.Username)
		require.NoError(t, err)
		require.Equal(t, a.ID, byName.ID)

		byEmail, err := s.Accounts().GetByLogin(ctx, a.Email)
		require.NoError(t, err)
		require.Equal(t, a.ID, byEmail.ID)
	})

	t.Run("missing account returns not found", func(t *testing.T) {
		_, err := s.Accounts().GetByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.Accounts().GetByLogin(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username rejected", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		dup := newTestAccount(t)
		dup.Username = a.Username
		require.ErrorIs(t, s.Accounts().Create(ctx, dup), store.ErrAlreadyExists)

		dup2 := newTestAccount(t)
		dup2.Email = a.Email
		require.ErrorIs(t, s.Accounts().Create(ctx, dup2), store.ErrAlreadyExists)
	})

	t.Run("resignup replaces hash and code", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		newExpiry := time.Now().UTC().Add(10 * time.Minute).Truncate(time.Second)
		require.NoError(t, s.Accounts().UpdateForResignup(ctx, a.ID, "newhash", "654321", newExpiry))

		got, err := s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.Equal(t, "newhash", got.PasswordHash)
		require.Equal(t, "654321", got.VerifyCode)
		require.WithinDuration(t, newExpiry, got.VerifyCodeExpiry, time.Second)

		require.ErrorIs(t,
			s.Accounts().UpdateForResignup(ctx, "nope", "h", "c", newExpiry),
			store.ErrNotFound)
	})

	t.Run("mark verified and clear code", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		// ClearVerifyCode only touches verified accounts
		require.ErrorIs(t, s.Accounts().ClearVerifyCode(ctx, a.ID), store.ErrNotFound)

		require.NoError(t, s.Accounts().MarkVerified(ctx, a.ID))
		got, err := s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, got.Verified)

		require.NoError(t, s.Accounts().ClearVerifyCode(ctx, a.ID))
		got, err = s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.Empty(t, got.VerifyCode)
	})

	t.Run("set accepting messages", func(t *testing.T) {
		a := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, a))

		require.NoError(t, s.Accounts().SetAcceptingMessages(ctx, a.ID, false))
		got, err := s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.False(t, got.AcceptingMessages)

		require.NoError(t, s.Accounts().SetAcceptingMessages(ctx, a.ID, true))
		got, err = s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, got.AcceptingMessages)
	})
}

func TestAccountsIsEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	empty, err := s.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, s.Accounts().Create(ctx, newTestAccount(t)))

	empty, err = s.Accounts().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func TestMessagesRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	owner := newTestAccount(t)
	require.NoError(t, s.Accounts().Create(ctx, owner))

	t.Run("append and list newest first", func(t *testing.T) {
		for _, content := range []string{"first message here", "second message here", "third message here"} {
			require.NoError(t, s.Messages().Append(ctx, domain.Message{
				ID:        idx.New().String(),
				AccountID: owner.ID,
				Content:   content,
			}))
		}

		msgs, err := s.Messages().ListByAccount(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, msgs, 3)
		// Rows created in the same second fall back to id order; ULIDs
		// are monotonic so newest still sorts first.
		require.Equal(t, "third message here", msgs[0].Content)
		require.Equal(t, "first message here", msgs[2].Content)

		count, err := s.Messages().CountByAccount(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, 3, count)
	})

	t.Run("delete requires ownership and presence", func(t *testing.T) {
		m := domain.Message{
			ID:        idx.New().String(),
			AccountID: owner.ID,
			Content:   "delete me please ok",
		}
		require.NoError(t, s.Messages().Append(ctx, m))

		other := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, other))

		// Wrong owner cannot delete
		require.ErrorIs(t, s.Messages().Delete(ctx, other.ID, m.ID), store.ErrNotFound)

		require.NoError(t, s.Messages().Delete(ctx, owner.ID, m.ID))

		// Second delete fails: the row is already gone
		require.ErrorIs(t, s.Messages().Delete(ctx, owner.ID, m.ID), store.ErrNotFound)
	})

	t.Run("list for account without messages is empty", func(t *testing.T) {
		lonely := newTestAccount(t)
		require.NoError(t, s.Accounts().Create(ctx, lonely))

		msgs, err := s.Messages().ListByAccount(ctx, lonely.ID)
		require.NoError(t, err)
		require.Empty(t, msgs)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	t.Run("commit persists", func(t *testing.T) {
		a := newTestAccount(t)
		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Accounts().Create(ctx, a)
		})
		require.NoError(t, err)

		_, err = s.Accounts().GetByID(ctx, a.ID)
		require.NoError(t, err)
	})

	t.Run("error rolls back", func(t *testing.T) {
		a := newTestAccount(t)
		err := s.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Accounts().Create(ctx, a); err != nil {
				return err
			}
			return context.Canceled // force rollback
		})
		require.Error(t, err)

		_, err = s.Accounts().GetByID(ctx, a.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
