package domain

import "github.com/fcja/agendamentos/pkg/types"

// Visitor is an individual walk-in visit booking.
type Visitor struct {
	ID          int64      `json:"id"`
	Name        string     `json:"nome"`
	Gender      string     `json:"genero"`
	Email       string     `json:"email"`
	Phone       string     `json:"telefone"`
	Address     string     `json:"endereco"`
	PartySize   int        `json:"qtd_pessoas"`
	VisitDate   types.Date `json:"data"`
	Shift       Shift      `json:"turno"`
	ArrivalTime string     `json:"horario_chegada"`
	Duration    string     `json:"duracao"`
	Notes       string     `json:"observacao"`
}

// School is a school group visit booking.
type School struct {
	ID             int64      `json:"id"`
	SchoolName     string     `json:"nome_escola"`
	Representative string     `json:"representante"`
	Email          string     `json:"email"`
	Phone          string     `json:"telefone"`
	Address        string     `json:"endereco"`
	StudentCount   int        `json:"num_alunos"`
	VisitDate      types.Date `json:"data"`
	Shift          Shift      `json:"turno"`
	ArrivalTime    string     `json:"horario_chegada"`
	Duration       string     `json:"duracao"`
	Notes          string     `json:"observacao"`
}

// Institution is a higher-education group visit booking.
type Institution struct {
	ID              int64      `json:"id"`
	InstitutionName string     `json:"nome_ies"`
	Representative  string     `json:"representante"`
	Email           string     `json:"email"`
	Phone           string     `json:"telefone"`
	Address         string     `json:"endereco"`
	StudentCount    int        `json:"num_alunos"`
	VisitDate       types.Date `json:"data"`
	Shift           Shift      `json:"turno"`
	ArrivalTime     string     `json:"horario_chegada"`
	Duration        string     `json:"duracao"`
	Notes           string     `json:"observacao"`
}

// Researcher is a scheduled research visit booking.
type Researcher struct {
	ID            int64      `json:"id"`
	Name          string     `json:"nome"`
	Gender        string     `json:"genero"`
	Email         string     `json:"email"`
	Phone         string     `json:"telefone"`
	Institution   string     `json:"instituicao"`
	ResearchTopic string     `json:"pesquisa"`
	VisitDate     types.Date `json:"data"`
	Shift         Shift      `json:"turno"`
	ArrivalTime   string     `json:"horario_chegada"`
	Duration      string     `json:"duracao"`
	Notes         string     `json:"observacao"`
}

// Row returns field values as strings in Columns order (id first).
func (v *Visitor) Row() []string {
	return []string{
		itoa(v.ID), v.Name, v.Gender, v.Email, v.Phone, v.Address,
		itoaInt(v.PartySize), v.VisitDate.String(), string(v.Shift),
		v.ArrivalTime, v.Duration, v.Notes,
	}
}

func (s *School) Row() []string {
	return []string{
		itoa(s.ID), s.SchoolName, s.Representative, s.Email, s.Phone, s.Address,
		itoaInt(s.StudentCount), s.VisitDate.String(), string(s.Shift),
		s.ArrivalTime, s.Duration, s.Notes,
	}
}

func (i *Institution) Row() []string {
	return []string{
		itoa(i.ID), i.InstitutionName, i.Representative, i.Email, i.Phone, i.Address,
		itoaInt(i.StudentCount), i.VisitDate.String(), string(i.Shift),
		i.ArrivalTime, i.Duration, i.Notes,
	}
}

func (r *Researcher) Row() []string {
	return []string{
		itoa(r.ID), r.Name, r.Gender, r.Email, r.Phone, r.Institution,
		r.ResearchTopic, r.VisitDate.String(), string(r.Shift),
		r.ArrivalTime, r.Duration, r.Notes,
	}
}
