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

type SignInHandler struct {
	SessionService *service.SessionService
}

// ServeHTTP godoc
//
//	@Summary		Sign In Endpoint
//	@Description	Authenticate with a username or email plus password. Unverified accounts
//	@Description	cannot sign in. Returns a Bearer session token and a snapshot of the
//	@Description	account at login time.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		sdk.SignInRequest	true	"identifier, password"
//	@Success		200		{object}	sdk.SignInResponse	"accessToken, tokenType, expiresIn, user"
//	@Failure		401		{object}	sdk.Envelope		"wrong password"
//	@Failure		403		{object}	sdk.Envelope		"account not verified"
//	@Failure		404		{object}	sdk.Envelope		"unknown identifier"
//	@Router			/api/sign-in [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req sdk.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	sess, err := h.SessionService.Login(ctx, req.Identifier, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "No account found with this username or email")
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Incorrect password")
		case errors.Is(err, service.ErrUnverified):
			writeError(w, http.StatusForbidden, "Please verify your account before signing in")
		default:
			log.Error("sign-in failed", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, sdk.SignInResponse{
		Envelope:    sdk.Envelope{Success: true, Message: "Signed in"},
		AccessToken: sess.AccessToken,
		TokenType:   sess.TokenType,
		ExpiresIn:   sess.ExpiresIn,
		User: sdk.SessionUser{
			ID:                  sess.AccountID,
			Username:            sess.Username,
			Verified:            sess.Verified,
			IsAcceptingMessages: sess.AcceptingMessages,
		},
	})
}
