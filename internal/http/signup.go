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

type SignUpHandler struct {
	SignupService *service.SignupService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up Endpoint
//	@Description	Register a new account. A six-digit verification code is emailed to the
//	@Description	given address; the account stays unverified until the code is confirmed.
//	@Description	Signing up again with an unverified username or email refreshes the code.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SignUpRequest	true	"username, email, password"
//	@Success		201		{object}	sdk.SignUpResponse	"success, message, emailDelivered"
//	@Failure		400		{object}	sdk.Envelope		"validation failure"
//	@Failure		409		{object}	sdk.Envelope		"username or email already taken"
//	@Router			/api/sign-up [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	res, err := h.SignupService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Field+" "+ve.Reason)
		case errors.Is(err, store.ErrAlreadyExists):
			writeError(w, http.StatusConflict, "Username or email is already taken")
		default:
			log.Error("sign-up failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	message := "Account registered. Please check your email to verify."
	if !res.EmailDelivered {
		message = "Account registered, but the verification email could not be sent. Sign up again to retry."
	}

	httpx.WriteJSON(w, http.StatusCreated, sdk.SignUpResponse{
		Envelope:       sdk.Envelope{Success: true, Message: message},
		EmailDelivered: res.EmailDelivered,
	})
}
