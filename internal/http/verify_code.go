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

type VerifyCodeHandler struct {
	VerificationService *service.VerificationService
}

// ServeHTTP godoc
//
//	@Summary		Verify Code Endpoint
//	@Description	Confirm an account with the emailed six-digit code. Expired codes are
//	@Description	reported as expired regardless of whether they match; the owner has to
//	@Description	sign up again for a fresh one.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.VerifyCodeRequest	true	"username, code"
//	@Success		200		{object}	sdk.Envelope			"account verified"
//	@Failure		400		{object}	sdk.Envelope			"code expired or incorrect"
//	@Failure		404		{object}	sdk.Envelope			"unknown username"
//	@Router			/api/verify-code [post].
func (h *VerifyCodeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.VerificationService.Confirm(ctx, req.Username, req.Code); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "No account found with this username")
		case errors.Is(err, service.ErrCodeExpired):
			writeError(w, http.StatusBadRequest, "Verification code has expired. Please sign up again to get a new code")
		case errors.Is(err, service.ErrCodeMismatch):
			writeError(w, http.StatusBadRequest, "Incorrect verification code")
		default:
			log.Error("verify-code failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.Envelope{
		Success: true,
		Message: "Account verified successfully",
	})
}
