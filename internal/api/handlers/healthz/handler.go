// Package healthz exposes the liveness probe.
package healthz

import (
	"context"
	"net/http"

	"github.com/fcja/agendamentos/internal/api/handlers"
	"github.com/fcja/agendamentos/internal/domain"
)

// Prober is the minimal storage read the probe performs.
type Prober interface {
	ListVisitors(ctx context.Context, f domain.ListFilter) ([]*domain.Visitor, error)
}

// Logger is the narrow logging interface the handler needs.
type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	prober Prober
	logger Logger
}

func NewHandler(prober Prober, logger Logger) *Handler {
	return &Handler{
		prober: prober,
		logger: logger,
	}
}

type status struct {
	Status string `json:"status"`
}

// Handle GET /healthz. A cheap single-row read proves the backend is
// reachable, which a plain 200 would not.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if _, err := h.prober.ListVisitors(r.Context(), domain.ListFilter{Limit: 1}); err != nil {
		h.logger.Error("GET /healthz - storage probe failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, status{Status: "degraded"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, status{Status: "ok"})
}
