package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/sdk"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

type MessagesHandler struct {
	MessageService *service.MessageService
}

// HandleList godoc
//
//	@Summary		List Messages Endpoint
//	@Description	List the authenticated owner's received messages, newest first.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	sdk.MessagesResponse	"success, messages"
//	@Failure		401	{object}	sdk.Envelope			"missing or invalid session"
//	@Router			/api/messages [get].
func (h *MessagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromCtx(ctx)

	msgs, err := h.MessageService.List(ctx, accountID)
	if err != nil {
		log.Error("list messages failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	out := make([]sdk.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, sdk.Message{
			ID:        m.ID,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.MessagesResponse{
		Envelope: sdk.Envelope{Success: true},
		Messages: out,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete Message Endpoint
//	@Description	Delete one of the authenticated owner's messages by id. Deleting a
//	@Description	message that is already gone reports 404, so racing deletes fail loudly.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string			true	"Message ID"
//	@Success		200	{object}	sdk.Envelope	"message deleted"
//	@Failure		401	{object}	sdk.Envelope	"missing or invalid session"
//	@Failure		404	{object}	sdk.Envelope	"message not found or not yours"
//	@Router			/api/messages/{id} [delete].
func (h *MessagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromCtx(ctx)
	messageID := r.PathValue("id")

	if err := h.MessageService.Delete(ctx, accountID, messageID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found or already deleted")
			return
		}
		log.Error("delete message failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.Envelope{
		Success: true,
		Message: "Message deleted",
	})
}
