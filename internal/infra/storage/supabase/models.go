package supabase

import (
	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/pkg/types"
)

// Insert payloads mirror the domain records minus the id column, which the
// database assigns. Sending an explicit id would collide with the sequence.

type visitorInsert struct {
	Name        string       `json:"nome"`
	Gender      string       `json:"genero"`
	Email       string       `json:"email"`
	Phone       string       `json:"telefone"`
	Address     string       `json:"endereco"`
	PartySize   int          `json:"qtd_pessoas"`
	VisitDate   types.Date   `json:"data"`
	Shift       domain.Shift `json:"turno"`
	ArrivalTime string       `json:"horario_chegada"`
	Duration    string       `json:"duracao"`
	Notes       string       `json:"observacao"`
}

type schoolInsert struct {
	SchoolName     string       `json:"nome_escola"`
	Representative string       `json:"representante"`
	Email          string       `json:"email"`
	Phone          string       `json:"telefone"`
	Address        string       `json:"endereco"`
	StudentCount   int          `json:"num_alunos"`
	VisitDate      types.Date   `json:"data"`
	Shift          domain.Shift `json:"turno"`
	ArrivalTime    string       `json:"horario_chegada"`
	Duration       string       `json:"duracao"`
	Notes          string       `json:"observacao"`
}

type institutionInsert struct {
	InstitutionName string       `json:"nome_ies"`
	Representative  string       `json:"representante"`
	Email           string       `json:"email"`
	Phone           string       `json:"telefone"`
	Address         string       `json:"endereco"`
	StudentCount    int          `json:"num_alunos"`
	VisitDate       types.Date   `json:"data"`
	Shift           domain.Shift `json:"turno"`
	ArrivalTime     string       `json:"horario_chegada"`
	Duration        string       `json:"duracao"`
	Notes           string       `json:"observacao"`
}

type researcherInsert struct {
	Name          string       `json:"nome"`
	Gender        string       `json:"genero"`
	Email         string       `json:"email"`
	Phone         string       `json:"telefone"`
	Institution   string       `json:"instituicao"`
	ResearchTopic string       `json:"pesquisa"`
	VisitDate     types.Date   `json:"data"`
	Shift         domain.Shift `json:"turno"`
	ArrivalTime   string       `json:"horario_chegada"`
	Duration      string       `json:"duracao"`
	Notes         string       `json:"observacao"`
}

// userWire is the usuarios row shape. The hash travels in the password
// column; domain.User hides it from JSON, so a separate wire type is needed.
type userWire struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
	Ativo    int    `json:"ativo"`
}

func (u userWire) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.Password,
		Active:       u.Ativo != 0,
	}
}
