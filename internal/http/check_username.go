package http

import (
	"errors"
	"net/http"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/sdk"
	"github.com/lumenlab/whisperbox/pkg/slogx"
)

type CheckUsernameHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Username Availability Endpoint
//	@Description	Check whether a username can still be claimed. Usernames held by
//	@Description	unverified accounts count as available.
//	@Tags			Accounts
//	@Produce		json
//	@Param			username	query		string						true	"Username to check"
//	@Success		200			{object}	sdk.CheckUsernameResponse	"success, available, message"
//	@Failure		400			{object}	sdk.Envelope				"invalid username"
//	@Router			/api/check-username-unique [get].
func (h *CheckUsernameHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	username := r.URL.Query().Get("username")

	available, err := h.SignupService.CheckUsernameAvailable(ctx, username)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Field+" "+ve.Reason)
			return
		}
		log.Error("username check failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal error")
		return
	}

	message := "Username is available"
	if !available {
		message = "Username is already taken"
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.CheckUsernameResponse{
		Envelope:  sdk.Envelope{Success: true, Message: message},
		Available: available,
	})
}
