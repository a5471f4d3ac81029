package service

import (
	"context"

	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// AcceptanceService reads and writes an account's message-acceptance flag.
// Both operations go to the store every time; session claims are never
// trusted for this.
type AcceptanceService struct {
	Store store.Store
}

// Get returns the current acceptance flag for the account.
func (s *AcceptanceService) Get(ctx context.Context, accountID string) (bool, error) {
	account, err := s.Store.Accounts().GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}
	return account.AcceptingMessages, nil
}

// Set updates the acceptance flag. Concurrent writers race benignly: the
// last write wins.
func (s *AcceptanceService) Set(ctx context.Context, accountID string, accepting bool) error {
	if err := s.Store.Accounts().SetAcceptingMessages(ctx, accountID, accepting); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("acceptance updated", "account_id", accountID, "accepting", accepting)
	return nil
}
