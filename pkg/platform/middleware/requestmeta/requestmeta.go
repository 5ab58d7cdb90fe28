// Package requestmeta stamps every request with an ID and a request-scoped
// time so all operations within one request share the same "now" and every log
// line can be correlated.
package requestmeta

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"courtcal/pkg/requestcontext"
)

// Middleware assigns a request ID (honoring an inbound X-Request-ID header)
// and captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
