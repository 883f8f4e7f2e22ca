package hmiddleware

import (
	"net/http"

	"github.com/promroute/promroute/hcontext"
)

// RequestID annotates the request context with the inbound request ID,
// minting a fresh one when the client did not send any.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID, _ := hcontext.FromRequest(r)
		ctx = hcontext.WithRequestID(ctx, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
