// Package submit_booking handles the booking form submissions for all four
// categories. Responses follow the post-redirect-get pattern with the
// outcome carried as a flash key.
package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/service/bookings"
)

// Flash keys for the redirect targets.
const (
	keySuccess         = "agendado"
	keyInvalidEmail    = "email_invalido"
	keyInvalidPhone    = "telefone_invalido"
	keyInvalidDate     = "data_invalida"
	keyClosedDay       = "dia_fechado"
	keyNoResearchDay   = "dia_sem_pesquisa"
	keyInvalidShift    = "turno_invalido"
	keyStorageFailure  = "erro_banco"
	keyUnknownCategory = "categoria"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /agendar/{categoria}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["categoria"]
	cat, ok := domain.ParseCategory(slug)
	if !ok {
		h.logger.Warn("POST /agendar/%s - unknown category", slug)
		http.Redirect(w, r, "/?error="+keyUnknownCategory, http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Warn("POST /agendar/%s - bad form: %v", slug, err)
		http.Redirect(w, r, formURL(slug)+"?error="+keyStorageFailure, http.StatusSeeOther)
		return
	}

	var err error
	switch cat {
	case domain.CategoryVisitor:
		_, err = h.service.CreateVisitor(r.Context(), visitorRequest(r.PostForm))
	case domain.CategorySchool:
		_, err = h.service.CreateSchool(r.Context(), schoolRequest(r.PostForm))
	case domain.CategoryInstitution:
		_, err = h.service.CreateInstitution(r.Context(), institutionRequest(r.PostForm))
	case domain.CategoryResearcher:
		_, err = h.service.CreateResearcher(r.Context(), researcherRequest(r.PostForm))
	}

	if err != nil {
		key := errorKey(err)
		if key == keyStorageFailure {
			h.logger.Error("POST /agendar/%s - submission failed: %v", slug, err)
		} else {
			h.logger.Warn("POST /agendar/%s - rejected: %v", slug, err)
		}
		http.Redirect(w, r, formURL(slug)+"?error="+key, http.StatusSeeOther)
		return
	}

	h.logger.Info("POST /agendar/%s - booking accepted", slug)
	http.Redirect(w, r, "/?ok="+keySuccess, http.StatusSeeOther)
}

func formURL(slug string) string {
	return "/agendar/" + slug
}

// errorKey maps service sentinels to flash keys. Anything unrecognized is
// treated as a storage failure and shown generically.
func errorKey(err error) string {
	switch {
	case errors.Is(err, bookings.ErrInvalidEmail):
		return keyInvalidEmail
	case errors.Is(err, bookings.ErrInvalidPhone):
		return keyInvalidPhone
	case errors.Is(err, bookings.ErrInvalidDate):
		return keyInvalidDate
	case errors.Is(err, bookings.ErrInvalidVisitDate):
		return keyClosedDay
	case errors.Is(err, bookings.ErrInvalidResearchDate):
		return keyNoResearchDay
	case errors.Is(err, bookings.ErrInvalidShift):
		return keyInvalidShift
	default:
		return keyStorageFailure
	}
}
