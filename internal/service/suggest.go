package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumenlab/whisperbox/pkg/slogx"
)

// SuggestionProvider produces a batch of suggested questions as a single
// string with entries separated by "||".
type SuggestionProvider interface {
	GenerateSuggestions(ctx context.Context) (string, error)
}

// SuggestService asks an upstream provider for message prompts senders can
// pick from.
type SuggestService struct {
	Provider SuggestionProvider
}

// Suggest returns a raw suggestion string plus its parsed entries.
// Upstream failures come back wrapped in ErrSuggestUnavailable so the
// transport layer can answer with a gateway error.
func (s *SuggestService) Suggest(ctx context.Context) (string, []string, error) {
	raw, err := s.Provider.GenerateSuggestions(ctx)
	if err != nil {
		slogx.FromContext(ctx).Warn("suggestion provider failed", "err", err)
		return "", nil, fmt.Errorf("%w: %w", ErrSuggestUnavailable, err)
	}

	var parsed []string
	for _, part := range strings.Split(raw, "||") {
		if part = strings.TrimSpace(part); part != "" {
			parsed = append(parsed, part)
		}
	}

	return raw, parsed, nil
}
