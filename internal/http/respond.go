package http

import (
	"net/http"

	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/sdk"
)

// writeError answers with the common failure envelope.
func writeError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, sdk.Envelope{Success: false, Message: message})
}
