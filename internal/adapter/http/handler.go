package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds a ScalerUseCase to execute business logic and a logger
// for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	svc    port.ScalerUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// ScalerUseCase implementation and a logger. The returned Handler
// registers handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.ScalerUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/cycle/run", h.handleRunCycle)
		r.Get("/actions", h.handleListActions)
		r.Post("/actions/{id}/approve", h.handleApprove)
		r.Post("/actions/{id}/reject", h.handleReject)
		r.Put("/rules", h.handleSaveRule)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with a JSON content type. Encoding failures are
// logged; headers have already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
