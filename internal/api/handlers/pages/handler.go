package pages

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fcja/agendamentos/internal/api/handlers"
	"github.com/fcja/agendamentos/internal/domain"
)

type Handler struct {
	renderer *handlers.Renderer
	logger   Logger
}

func NewHandler(renderer *handlers.Renderer, logger Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Index GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := IndexData{Flash: handlers.MakeFlash(r)}
	for _, cat := range domain.Categories {
		data.Categories = append(data.Categories, CategoryLink{
			Slug: string(cat),
			Name: domain.CategoryNames[cat],
		})
	}
	if err := h.renderer.Render(w, "index.tmpl", data); err != nil {
		h.logger.Error("GET / - render failed: %v", err)
	}
}

// BookingForm GET /agendar/{categoria}
func (h *Handler) BookingForm(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["categoria"]
	cat, ok := domain.ParseCategory(slug)
	if !ok {
		h.logger.Warn("GET /agendar/%s - unknown category", slug)
		http.Redirect(w, r, "/?error=categoria", http.StatusSeeOther)
		return
	}

	data := FormData{
		Flash:    handlers.MakeFlash(r),
		Slug:     string(cat),
		Name:     domain.CategoryNames[cat],
		IsSchool: cat == domain.CategorySchool,
		IsIES:    cat == domain.CategoryInstitution,
		IsPesq:   cat == domain.CategoryResearcher,
	}
	if err := h.renderer.Render(w, "form.tmpl", data); err != nil {
		h.logger.Error("GET /agendar/%s - render failed: %v", slug, err)
	}
}
