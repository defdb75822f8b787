package domain

// Category identifies one of the four booking kinds. The string value is the
// storage table name, kept identical to the historical schema.
type Category string

const (
	CategoryVisitor     Category = "visitante"
	CategorySchool      Category = "escola"
	CategoryInstitution Category = "ies"
	CategoryResearcher  Category = "pesquisador"
)

// Categories all booking categories, in report order
var Categories = []Category{
	CategoryVisitor,
	CategorySchool,
	CategoryInstitution,
	CategoryResearcher,
}

// ParseCategory maps a URL/CLI value onto a known category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryVisitor, CategorySchool, CategoryInstitution, CategoryResearcher:
		return Category(s), true
	}
	return "", false
}

// Table returns the storage table name for the category.
func (c Category) Table() string {
	return string(c)
}

// CategoryNames Portuguese display names for rendered pages
var CategoryNames = map[Category]string{
	CategoryVisitor:     "Visitante",
	CategorySchool:      "Escola",
	CategoryInstitution: "Instituição de Ensino Superior",
	CategoryResearcher:  "Pesquisador",
}

// UsersTable name of the operator accounts table
const UsersTable = "usuarios"

// AllTables the allow-list for administrative inspection commands,
// alphabetical like an information_schema listing
var AllTables = []string{"escola", "ies", "pesquisador", "usuarios", "visitante"}

// Shift is one of the two half-day windows a booking is assigned to.
// Stored values keep the original spelling with the diacritic.
type Shift string

const (
	ShiftMorning   Shift = "manhã"
	ShiftAfternoon Shift = "tarde"
)

// Date formats accepted and rendered by the system
const (
	DateFormat   = "2006-01-02"
	DateFormatBR = "02/01/2006"
)

// Columns column names per table, in persisted order. CSV export headers and
// the CLI record dump follow this order.
var Columns = map[Category][]string{
	CategoryVisitor: {
		"id", "nome", "genero", "email", "telefone", "endereco",
		"qtd_pessoas", "data", "turno", "horario_chegada", "duracao", "observacao",
	},
	CategorySchool: {
		"id", "nome_escola", "representante", "email", "telefone", "endereco",
		"num_alunos", "data", "turno", "horario_chegada", "duracao", "observacao",
	},
	CategoryInstitution: {
		"id", "nome_ies", "representante", "email", "telefone", "endereco",
		"num_alunos", "data", "turno", "horario_chegada", "duracao", "observacao",
	},
	CategoryResearcher: {
		"id", "nome", "genero", "email", "telefone", "instituicao",
		"pesquisa", "data", "turno", "horario_chegada", "duracao", "observacao",
	},
}

// SearchColumns free-text filter targets per category, matching the sets the
// administrative tool has always searched.
var SearchColumns = map[Category][]string{
	CategoryVisitor:     {"nome", "email", "telefone", "endereco"},
	CategorySchool:      {"nome_escola", "representante", "email", "telefone"},
	CategoryInstitution: {"nome_ies", "representante", "email", "telefone"},
	CategoryResearcher:  {"nome", "email", "telefone", "instituicao", "pesquisa"},
}
