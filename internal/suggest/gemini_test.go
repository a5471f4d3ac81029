package suggest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumenlab/whisperbox/internal/suggest"
	"github.com/stretchr/testify/require"
)

func TestGenerateSuggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the model text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Contains(t, r.URL.Path, ":generateContent")
			require.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Contains(t, req, "contents")

			_ = json.NewEncoder(w).Encode(map[string]any{
				"candidates": []any{
					map[string]any{
						"content": map[string]any{
							"parts": []any{map[string]any{"text": "a||b||c"}},
						},
					},
				},
			})
		}))
		defer srv.Close()

		client := &suggest.GeminiClient{APIKey: "secret", BaseURL: srv.URL}

		text, err := client.GenerateSuggestions(ctx)
		require.NoError(t, err)
		require.Equal(t, "a||b||c", text)
	})

	t.Run("surfaces model errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": 429, "message": "quota exceeded"},
			})
		}))
		defer srv.Close()

		client := &suggest.GeminiClient{APIKey: "secret", BaseURL: srv.URL}

		_, err := client.GenerateSuggestions(ctx)
		require.ErrorContains(t, err, "quota exceeded")
	})

	t.Run("empty completion is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
		}))
		defer srv.Close()

		client := &suggest.GeminiClient{APIKey: "secret", BaseURL: srv.URL}

		_, err := client.GenerateSuggestions(ctx)
		require.Error(t, err)
	})

	t.Run("missing API key fails fast", func(t *testing.T) {
		client := &suggest.GeminiClient{}
		_, err := client.GenerateSuggestions(ctx)
		require.Error(t, err)
	})
}
