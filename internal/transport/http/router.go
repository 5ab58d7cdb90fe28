package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	extractionhandler "courtcal/internal/extraction/handler"
	mwauth "courtcal/pkg/platform/middleware/auth"
	"courtcal/pkg/platform/middleware/requestmeta"
)

// NewRouter wires public endpoints. Extraction and registry routes require a
// valid bearer token; health and metrics do not.
func NewRouter(
	extraction *extractionhandler.Handler,
	validator mwauth.JWTValidator,
	revocation mwauth.TokenRevocationChecker,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(requestmeta.Middleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(mwauth.RequireAuth(validator, revocation, logger))
		extraction.Register(r)
	})

	return r
}
