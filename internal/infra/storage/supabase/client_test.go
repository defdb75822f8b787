package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/infra/storage"
	"github.com/fcja/agendamentos/pkg/ptr"
	"github.com/fcja/agendamentos/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "anon-key", "service-key", 5*time.Second, nopLogger{})
}

func TestInsertVisitor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/visitante", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "return=representation", r.Header.Get("Prefer"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":7,"nome":"Maria Silva","genero":"feminino","email":"maria@example.com",` +
			`"telefone":"(83) 99999-8888","endereco":"Rua A, 10","qtd_pessoas":2,` +
			`"data":"2025-09-16","turno":"manhã","horario_chegada":"","duracao":"","observacao":""}]`))
	})

	date, err := types.ParseDate("2025-09-16")
	require.NoError(t, err)

	got, err := c.InsertVisitor(context.Background(), &domain.Visitor{
		Name:      "Maria Silva",
		Gender:    "feminino",
		Email:     "maria@example.com",
		Phone:     "(83) 99999-8888",
		Address:   "Rua A, 10",
		PartySize: 2,
		VisitDate: date,
		Shift:     domain.ShiftMorning,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Maria Silva", got.Name)
	assert.Equal(t, "2025-09-16", got.VisitDate.String())
}

func TestInsertVisitorErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"JWT expired"}`))
	})

	_, err := c.InsertVisitor(context.Background(), &domain.Visitor{Name: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestListVisitorsSearchQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "*", q.Get("select"))
		assert.Equal(t, "(nome.ilike.*maria*,email.ilike.*maria*,telefone.ilike.*maria*,endereco.ilike.*maria*)", q.Get("or"))
		assert.Equal(t, "id.desc", q.Get("order"))
		assert.Equal(t, "100", q.Get("limit"))
		w.Write([]byte(`[]`))
	})

	rows, err := c.ListVisitors(context.Background(), domain.ListFilter{Search: "maria"})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestListSchoolsDateBoundOrdering(t *testing.T) {
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.ElementsMatch(t, []string{"gte.2025-09-01", "lte.2025-09-30"}, q["data"])
		assert.Equal(t, "data.desc,id.desc", q.Get("order"))
		w.Write([]byte(`[{"id":3,"nome_escola":"Escola Estadual Centro","representante":"Ana",` +
			`"email":"ana@escola.br","telefone":"(83) 3222-1111","endereco":"Centro","num_alunos":30,` +
			`"data":"2025-09-12","turno":"tarde","horario_chegada":"","duracao":"","observacao":""}]`))
	})

	rows, err := c.ListSchools(context.Background(), domain.ListFilter{StartDate: ptr.Ptr(start), EndDate: ptr.Ptr(end)})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Escola Estadual Centro", rows[0].SchoolName)
	assert.Equal(t, 30, rows[0].StudentCount)
}

func TestCountByDateRange(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "count=exact", r.Header.Get("Prefer"))
		assert.Equal(t, "0-0", r.Header.Get("Range"))
		w.Header().Set("Content-Range", "0-0/42")
		w.WriteHeader(http.StatusPartialContent)
	})

	total, err := c.CountByDateRange(context.Background(), domain.CategoryVisitor,
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}

func TestCountEmptyTable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Range", "*/0")
		w.WriteHeader(http.StatusOK)
	})

	total, err := c.CountByDateRange(context.Background(), domain.CategorySchool,
		time.Now(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCountByShift(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("turno") {
		case "eq.manhã":
			w.Header().Set("Content-Range", "0-0/5")
		case "eq.tarde":
			w.Header().Set("Content-Range", "0-0/3")
		default:
			t.Errorf("unexpected turno filter %q", r.URL.Query().Get("turno"))
		}
		w.WriteHeader(http.StatusPartialContent)
	})

	morning, afternoon, err := c.CountByShift(context.Background(), domain.CategoryVisitor,
		time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(5), morning)
	assert.Equal(t, int64(3), afternoon)
}

func TestGetActiveUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.admin", q.Get("username"))
		assert.Equal(t, "eq.1", q.Get("ativo"))
		w.Write([]byte(`[{"id":1,"username":"admin","password":"$2a$10$hash","ativo":1}]`))
	})

	u, err := c.GetActiveUser(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.True(t, u.Active)
}

func TestGetActiveUserNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.GetActiveUser(context.Background(), "ghost")
	assert.True(t, errors.Is(err, storage.ErrUserNotFound))
}

func TestCreateUserUsesServiceKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "service-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer service-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":2,"username":"novo","password":"$2a$10$hash","ativo":1}]`))
	})

	u, err := c.CreateUser(context.Background(), "novo", "$2a$10$hash")
	require.NoError(t, err)
	assert.Equal(t, int64(2), u.ID)
	assert.True(t, u.Active)
}

func TestEscapeTerm(t *testing.T) {
	assert.Equal(t, "a b", escapeTerm("a,b"))
	assert.Equal(t, "joão", escapeTerm("  joão  "))
	assert.Equal(t, "x y", escapeTerm("x(y)*"))
}

func TestParseContentRange(t *testing.T) {
	total, err := parseContentRange("0-99/1234")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), total)

	_, err = parseContentRange("garbage")
	assert.Error(t, err)
}
