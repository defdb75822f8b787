package submit_booking

import (
	"net/url"
	"strings"

	"github.com/fcja/agendamentos/internal/service/bookings"
)

// Form field names match the historical templates, so saved bookmarks and
// old clients keep working.

func visitorRequest(form url.Values) *bookings.CreateVisitorRequest {
	return &bookings.CreateVisitorRequest{
		Name:        form.Get("nome"),
		Gender:      form.Get("genero"),
		Email:       form.Get("email"),
		Phone:       form.Get("telefone"),
		Address:     form.Get("endereco"),
		PartySize:   form.Get("qtd_pessoas"),
		VisitDate:   form.Get("data"),
		Shift:       form.Get("turno"),
		ArrivalTime: form.Get("horario_chegada"),
		Duration:    form.Get("duracao"),
		Notes:       form.Get("observacao"),
	}
}

func schoolRequest(form url.Values) *bookings.CreateSchoolRequest {
	return &bookings.CreateSchoolRequest{
		SchoolName:     form.Get("nome_escola"),
		Representative: representative(form),
		Email:          form.Get("email"),
		Phone:          form.Get("telefone"),
		Address:        form.Get("endereco"),
		StudentCount:   form.Get("num_alunos"),
		VisitDate:      form.Get("data"),
		Shift:          form.Get("turno"),
		ArrivalTime:    form.Get("horario_chegada"),
		Duration:       form.Get("duracao"),
		Notes:          form.Get("observacao"),
	}
}

func institutionRequest(form url.Values) *bookings.CreateInstitutionRequest {
	return &bookings.CreateInstitutionRequest{
		InstitutionName: form.Get("nome_ies"),
		Representative:  representative(form),
		Email:           form.Get("email"),
		Phone:           form.Get("telefone"),
		Address:         form.Get("endereco"),
		StudentCount:    form.Get("num_alunos"),
		VisitDate:       form.Get("data"),
		Shift:           form.Get("turno"),
		ArrivalTime:     form.Get("horario_chegada"),
		Duration:        form.Get("duracao"),
		Notes:           form.Get("observacao"),
	}
}

func researcherRequest(form url.Values) *bookings.CreateResearcherRequest {
	return &bookings.CreateResearcherRequest{
		Name:          form.Get("nome"),
		Gender:        form.Get("genero"),
		Email:         form.Get("email"),
		Phone:         form.Get("telefone"),
		Institution:   form.Get("instituicao"),
		ResearchTopic: form.Get("pesquisa"),
		VisitDate:     form.Get("data"),
		Shift:         form.Get("turno"),
		ArrivalTime:   form.Get("horario_chegada"),
		Duration:      form.Get("duracao"),
		Notes:         form.Get("observacao"),
	}
}

// representative reads the group contact name. Old templates posted the
// field as "responsavel"; the current ones use "representante". First
// non-empty wins.
func representative(form url.Values) string {
	if v := strings.TrimSpace(form.Get("representante")); v != "" {
		return v
	}
	return strings.TrimSpace(form.Get("responsavel"))
}
