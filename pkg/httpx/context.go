package httpx

import (
	"context"

	"github.com/lumenlab/whisperbox/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyAccountID ctxKey = "account_id"
	CtxKeyClaims    ctxKey = "claims" // full jwtx.Claims, if you need them
)

// AccountIDFromCtx returns the authenticated account ID, or "" when the
// request carried no valid session.
func AccountIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyAccountID).(string); ok {
		return v
	}
	return ""
}

// ClaimsFromCtx returns the full session claims for the request.
func ClaimsFromCtx(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}
