package http

import (
	"errors"
	"net/http"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/sdk"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

type SuggestHandler struct {
	SuggestService *service.SuggestService
}

// ServeHTTP godoc
//
//	@Summary		Suggest Messages Endpoint
//	@Description	Ask the upstream model for three suggested questions a sender can pick
//	@Description	from. The raw "a||b||c" batch is returned alongside the parsed list.
//	@Tags			Messages
//	@Produce		json
//	@Success		200	{object}	sdk.SuggestResponse	"success, raw, suggestions"
//	@Failure		502	{object}	sdk.Envelope		"upstream model unavailable"
//	@Router			/api/suggest-messages [post].
func (h *SuggestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	raw, parsed, err := h.SuggestService.Suggest(ctx)
	if err != nil {
		if errors.Is(err, service.ErrSuggestUnavailable) {
			writeError(w, http.StatusBadGateway, "Message suggestions are unavailable right now")
			return
		}
		log.Error("suggest failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.SuggestResponse{
		Envelope:    sdk.Envelope{Success: true},
		Raw:         raw,
		Suggestions: parsed,
	})
}
