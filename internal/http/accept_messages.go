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

type AcceptMessagesHandler struct {
	AcceptanceService *service.AcceptanceService
}

// HandleGet godoc
//
//	@Summary		Get Acceptance Flag Endpoint
//	@Description	Read the live message-acceptance flag for the authenticated owner.
//	@Description	This always reads the store; the session token's snapshot is ignored.
//	@Tags			Messages
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	sdk.AcceptMessagesResponse	"success, isAcceptingMessages"
//	@Failure		401	{object}	sdk.Envelope				"missing or invalid session"
//	@Failure		404	{object}	sdk.Envelope				"account no longer exists"
//	@Router			/api/accept-messages [get].
func (h *AcceptMessagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromCtx(ctx)

	accepting, err := h.AcceptanceService.Get(ctx, accountID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Error("get acceptance failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.AcceptMessagesResponse{
		Envelope:            sdk.Envelope{Success: true},
		IsAcceptingMessages: accepting,
	})
}

// HandlePost godoc
//
//	@Summary		Set Acceptance Flag Endpoint
//	@Description	Switch message intake on or off for the authenticated owner.
//	@Description	Concurrent updates race benignly; the last write wins.
//	@Tags			Messages
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		sdk.AcceptMessagesRequest	true	"acceptMessages"
//	@Success		200		{object}	sdk.AcceptMessagesResponse	"success, message, isAcceptingMessages"
//	@Failure		401		{object}	sdk.Envelope				"missing or invalid session"
//	@Failure		404		{object}	sdk.Envelope				"account no longer exists"
//	@Router			/api/accept-messages [post].
func (h *AcceptMessagesHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	accountID := httpx.AccountIDFromCtx(ctx)

	var req sdk.AcceptMessagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.AcceptanceService.Set(ctx, accountID, req.AcceptMessages); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Error("set acceptance failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	message := "You are now accepting messages"
	if !req.AcceptMessages {
		message = "You are no longer accepting messages"
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.AcceptMessagesResponse{
		Envelope:            sdk.Envelope{Success: true, Message: message},
		IsAcceptingMessages: req.AcceptMessages,
	})
}
