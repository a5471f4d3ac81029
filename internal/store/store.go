package store

import (
	"context"
	"errors"
	"time"

	"github.com/lumenlab/whisperbox/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Accounts() Accounts
	Messages() Messages

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Accounts interface {
	// GetByID returns an account by id.
	GetByID(ctx context.Context, id string) (domain.Account, error)

	// GetByUsername returns an account by its exact username.
	GetByUsername(ctx context.Context, username string) (domain.Account, error)

	// GetByEmail returns an account by its exact email.
	GetByEmail(ctx context.Context, email string) (domain.Account, error)

	// GetByLogin resolves a login identifier that may be either a
	// username or an email address.
	GetByLogin(ctx context.Context, identifier string) (domain.Account, error)

	// Create inserts a new account (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username or email is taken.
	Create(ctx context.Context, a domain.Account) error

	// UpdateForResignup replaces the password hash and verification code
	// on an existing unverified account and bumps updated_at.
	UpdateForResignup(ctx context.Context, accountID, passwordHash, code string, codeExpiry time.Time) error

	// MarkVerified flips verified=1 and bumps updated_at.
	MarkVerified(ctx context.Context, accountID string) error

	// SetAcceptingMessages updates the acceptance flag and bumps updated_at.
	SetAcceptingMessages(ctx context.Context, accountID string, accepting bool) error

	// ClearVerifyCode blanks the code and expiry on verified accounts
	// (housekeeping).
	ClearVerifyCode(ctx context.Context, accountID string) error

	// ScrubVerifiedCodes blanks leftover codes on all verified accounts
	// and returns how many rows changed (housekeeping).
	ScrubVerifiedCodes(ctx context.Context) (int64, error)

	// IsEmpty returns true if there are no accounts.
	IsEmpty(ctx context.Context) (bool, error)
}

type Messages interface {
	// Append inserts a new message (id is ULID).
	Append(ctx context.Context, m domain.Message) error

	// ListByAccount returns all messages for an account, newest first.
	ListByAccount(ctx context.Context, accountID string) ([]domain.Message, error)

	// Delete removes a message owned by the given account.
	// Returns ErrNotFound when no such row exists.
	Delete(ctx context.Context, accountID, messageID string) error

	// CountByAccount returns the number of stored messages for an account.
	CountByAccount(ctx context.Context, accountID string) (int, error)
}
