// Package recent_bookings renders the public recap of the latest bookings
// per category.
package recent_bookings

import (
	"net/http"

	"github.com/fcja/agendamentos/internal/api/handlers"
	"github.com/fcja/agendamentos/internal/service/bookings"
)

// recentLimit bookings shown per category
const recentLimit = 5

type Handler struct {
	service  BookingService
	renderer *handlers.Renderer
	logger   Logger
}

func NewHandler(service BookingService, renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// PageData feeds the ultimos template.
type PageData struct {
	Flash  *handlers.Flash
	Recent *bookings.RecentBookings
}

// Handle GET /ultimos
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	data := PageData{
		Flash:  handlers.MakeFlash(r),
		Recent: h.service.Recent(r.Context(), recentLimit),
	}
	if err := h.renderer.Render(w, "ultimos.tmpl", data); err != nil {
		h.logger.Error("GET /ultimos - render failed: %v", err)
	}
}
