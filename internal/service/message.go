package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/lumenlab/whisperbox/internal/domain"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/idx"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// MessageService handles anonymous intake and owner-side management of
// messages.
type MessageService struct {
	Store store.Store
}

// Submit delivers an anonymous message to the named recipient.
// Unverified recipients can still receive messages; only the acceptance
// flag gates intake.
//
// Returns:
//   - store.ErrNotFound when the recipient doesn't exist
//   - ErrNotAccepting when intake is switched off (checked before content,
//     so a closed inbox answers the same way for any payload)
//   - *ValidationError when the content length is out of bounds
func (s *MessageService) Submit(ctx context.Context, username, content string) (domain.Message, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve the recipient.
	account, err := s.Store.Accounts().GetByUsername(ctx, username)
	if err != nil {
		return domain.Message{}, err
	}

	// 2. Acceptance gate.
	if !account.AcceptingMessages {
		return domain.Message{}, ErrNotAccepting
	}

	// 3. Content bounds, counted in runes so multibyte text isn't
	//    penalized.
	if err := validateContent(content); err != nil {
		return domain.Message{}, err
	}

	// 4. Append. No sender identity is recorded anywhere.
	msg := domain.Message{
		ID:        idx.New().String(),
		AccountID: account.ID,
		Content:   content,
	}
	if err := s.Store.Messages().Append(ctx, msg); err != nil {
		return domain.Message{}, err
	}

	log.Info("message delivered", "recipient", username)
	return msg, nil
}

// List returns the owner's messages, newest first.
func (s *MessageService) List(ctx context.Context, accountID string) ([]domain.Message, error) {
	return s.Store.Messages().ListByAccount(ctx, accountID)
}

// Delete removes one of the owner's messages.
// Returns store.ErrNotFound when the message doesn't exist or belongs to
// someone else; deleting twice fails the second time.
func (s *MessageService) Delete(ctx context.Context, accountID, messageID string) error {
	return s.Store.Messages().Delete(ctx, accountID, messageID)
}

func validateContent(content string) error {
	n := utf8.RuneCountInString(content)
	switch {
	case n < domain.MessageMinLen:
		return &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("must be at least %d characters", domain.MessageMinLen),
		}
	case n > domain.MessageMaxLen:
		return &ValidationError{
			Field:  "content",
			Reason: fmt.Sprintf("must be no longer than %d characters", domain.MessageMaxLen),
		}
	}
	return nil
}
