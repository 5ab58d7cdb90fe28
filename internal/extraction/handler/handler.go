package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"courtcal/internal/extraction"
	"courtcal/pkg/platform/httputil"
	"courtcal/pkg/requestcontext"
)

// Service defines the interface for extraction operations.
type Service interface {
	Extract(ctx context.Context, req extraction.ExtractRequest) (*extraction.Report, error)
	ReloadRegistry(ctx context.Context) error
	ClearRegistry()
}

//go:generate mockgen -source=handler.go -destination=mocks/extraction-mocks.go -package=mocks Service

// Handler wires extraction endpoints to the extraction service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an extraction handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts extraction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/reports/extract", h.HandleExtract)
	r.Post("/registry/reload", h.HandleRegistryReload)
	r.Delete("/registry/cache", h.HandleRegistryClear)
}

// HandleExtract handles POST /reports/extract requests.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[ExtractReportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	report, err := h.service.Extract(ctx, extraction.ExtractRequest{FilePath: req.FilePath})
	if err != nil {
		h.logger.ErrorContext(ctx, "extraction failed",
			"request_id", requestID,
			"file_path", req.FilePath,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "extraction succeeded",
		"request_id", requestID,
		"file_path", req.FilePath,
		"entries", len(report.Entries),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromReport(report))
}

// HandleRegistryReload handles POST /registry/reload requests.
func (h *Handler) HandleRegistryReload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	if err := h.service.ReloadRegistry(ctx); err != nil {
		h.logger.ErrorContext(ctx, "registry reload failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleRegistryClear handles DELETE /registry/cache requests.
func (h *Handler) HandleRegistryClear(w http.ResponseWriter, r *http.Request) {
	h.service.ClearRegistry()
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
