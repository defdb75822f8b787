package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcja/agendamentos/internal/domain"
)

type fakeStore struct {
	visitor     *domain.Visitor
	school      *domain.School
	institution *domain.Institution
	researcher  *domain.Researcher

	insertErr error
	listErr   error

	visitors    []*domain.Visitor
	schools     []*domain.School
	lastFilter  domain.ListFilter
	insertCalls int
}

func (f *fakeStore) InsertVisitor(_ context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	v.ID = 1
	f.visitor = v
	return v, nil
}

func (f *fakeStore) InsertSchool(_ context.Context, s *domain.School) (*domain.School, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	s.ID = 2
	f.school = s
	return s, nil
}

func (f *fakeStore) InsertInstitution(_ context.Context, i *domain.Institution) (*domain.Institution, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	i.ID = 3
	f.institution = i
	return i, nil
}

func (f *fakeStore) InsertResearcher(_ context.Context, r *domain.Researcher) (*domain.Researcher, error) {
	f.insertCalls++
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	r.ID = 4
	f.researcher = r
	return r, nil
}

func (f *fakeStore) ListVisitors(_ context.Context, fl domain.ListFilter) ([]*domain.Visitor, error) {
	f.lastFilter = fl
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.visitors, nil
}

func (f *fakeStore) ListSchools(_ context.Context, fl domain.ListFilter) ([]*domain.School, error) {
	f.lastFilter = fl
	return f.schools, nil
}

func (f *fakeStore) ListInstitutions(_ context.Context, fl domain.ListFilter) ([]*domain.Institution, error) {
	f.lastFilter = fl
	return []*domain.Institution{}, nil
}

func (f *fakeStore) ListResearchers(_ context.Context, fl domain.ListFilter) ([]*domain.Researcher, error) {
	f.lastFilter = fl
	return []*domain.Researcher{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// 2025-09-16 is a Tuesday, 2025-09-15 a Monday, 2025-09-20 a Saturday.

func validVisitorRequest() *CreateVisitorRequest {
	return &CreateVisitorRequest{
		Name:      "Maria Silva",
		Gender:    "feminino",
		Email:     "maria@example.com",
		Phone:     "(83) 99999-8888",
		Address:   "Rua A, 10",
		PartySize: "3",
		VisitDate: "2025-09-16",
		Shift:     "manhã",
	}
}

func TestCreateVisitor(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})

	got, err := svc.CreateVisitor(context.Background(), validVisitorRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, 3, got.PartySize)
	assert.Equal(t, domain.ShiftMorning, got.Shift)
	assert.Equal(t, "2025-09-16", got.VisitDate.String())
}

func TestCreateVisitorDefaultsPartySize(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})

	req := validVisitorRequest()
	req.PartySize = ""
	got, err := svc.CreateVisitor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PartySize)
}

func TestCreateVisitorValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateVisitorRequest)
		wantErr error
	}{
		{"bad email", func(r *CreateVisitorRequest) { r.Email = "not-an-email" }, ErrInvalidEmail},
		{"bad phone", func(r *CreateVisitorRequest) { r.Phone = "123" }, ErrInvalidPhone},
		{"unparseable date", func(r *CreateVisitorRequest) { r.VisitDate = "amanhã" }, ErrInvalidDate},
		{"monday closed", func(r *CreateVisitorRequest) { r.VisitDate = "2025-09-15" }, ErrInvalidVisitDate},
		{"bad shift", func(r *CreateVisitorRequest) { r.Shift = "noite" }, ErrInvalidShift},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(store, nopLogger{})

			req := validVisitorRequest()
			tt.mutate(req)
			_, err := svc.CreateVisitor(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.insertCalls, "invalid submission must not reach storage")
		})
	}
}

func TestCreateVisitorAcceptsBRDate(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})

	req := validVisitorRequest()
	req.VisitDate = "16/09/2025"
	got, err := svc.CreateVisitor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-09-16", got.VisitDate.String())
}

func TestCreateVisitorStorageError(t *testing.T) {
	store := &fakeStore{insertErr: errors.New("connection refused")}
	svc := NewService(store, nopLogger{})

	_, err := svc.CreateVisitor(context.Background(), validVisitorRequest())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestCreateSchoolDefaultsStudentCount(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})

	got, err := svc.CreateSchool(context.Background(), &CreateSchoolRequest{
		SchoolName:     "Escola Estadual Centro",
		Representative: "Ana Souza",
		Email:          "ana@escola.br",
		Phone:          "(83) 3222-1111",
		Address:        "Centro",
		StudentCount:   "",
		VisitDate:      "2025-09-17",
		Shift:          "tarde",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, got.StudentCount)
	assert.Equal(t, domain.ShiftAfternoon, got.Shift)
}

func TestCreateResearcherWeekdayRule(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nopLogger{})

	req := &CreateResearcherRequest{
		Name:          "João Pereira",
		Gender:        "masculino",
		Email:         "joao@ufpb.br",
		Phone:         "(83) 98888-7777",
		Institution:   "UFPB",
		ResearchTopic: "acervo documental",
		VisitDate:     "2025-09-20",
		Shift:         "manha",
	}
	_, err := svc.CreateResearcher(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidResearchDate)

	// Monday is fine for researchers even though the site is closed to the
	// public.
	req.VisitDate = "2025-09-15"
	got, err := svc.CreateResearcher(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ShiftMorning, got.Shift)
}

func TestRecentDegradesFailedCategory(t *testing.T) {
	store := &fakeStore{
		listErr: errors.New("table missing"),
		schools: []*domain.School{{ID: 9, SchoolName: "Escola X"}},
	}
	svc := NewService(store, nopLogger{})

	got := svc.Recent(context.Background(), 5)
	assert.Empty(t, got.Visitors)
	assert.NotNil(t, got.Visitors)
	require.Len(t, got.Schools, 1)
	assert.Equal(t, "Escola X", got.Schools[0].SchoolName)
	assert.Equal(t, uint64(5), store.lastFilter.Limit)
}

func TestRowsColumnOrder(t *testing.T) {
	store := &fakeStore{
		visitors: []*domain.Visitor{{
			ID: 7, Name: "Maria", Gender: "feminino", Email: "m@x.com",
			Phone: "(83) 99999-8888", Address: "Rua A", PartySize: 2,
			Shift: domain.ShiftMorning,
		}},
	}
	svc := NewService(store, nopLogger{})

	rows, err := svc.Rows(context.Background(), domain.CategoryVisitor, domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(domain.Columns[domain.CategoryVisitor]))
	assert.Equal(t, "7", rows[0][0])
	assert.Equal(t, "Maria", rows[0][1])
}

func TestRowsUnknownCategory(t *testing.T) {
	svc := NewService(&fakeStore{}, nopLogger{})
	_, err := svc.Rows(context.Background(), domain.Category("unknown"), domain.ListFilter{})
	assert.Error(t, err)
}
