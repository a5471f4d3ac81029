package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/sdk"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

type SendMessageHandler struct {
	MessageService *service.MessageService
}

// ServeHTTP godoc
//
//	@Summary		Send Message Endpoint
//	@Description	Deliver an anonymous message to a recipient by username. No session is
//	@Description	required and no sender identity is recorded. Recipients who switched off
//	@Description	intake reject every payload the same way.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SendMessageRequest	true	"username, content (10-300 characters)"
//	@Success		201		{object}	sdk.SendMessageResponse	"message delivered, id"
//	@Failure		400		{object}	sdk.Envelope			"content out of bounds"
//	@Failure		403		{object}	sdk.Envelope			"recipient not accepting messages"
//	@Failure		404		{object}	sdk.Envelope			"unknown recipient"
//	@Router			/api/send-message [post].
func (h *SendMessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	msg, err := h.MessageService.Submit(ctx, req.Username, req.Content)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "No account found with this username")
		case errors.Is(err, service.ErrNotAccepting):
			writeError(w, http.StatusForbidden, "This user is not accepting messages right now")
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Field+" "+ve.Reason)
		default:
			log.Error("send-message failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.SendMessageResponse{
		Envelope: sdk.Envelope{Success: true, Message: "Message sent successfully"},
		ID:       msg.ID,
	})
}
