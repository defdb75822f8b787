package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcja/agendamentos/internal/domain"
)

type fakeCounter struct {
	ranges map[domain.Category]int64
	shifts map[domain.Category][2]int64
	err    error
}

func (f *fakeCounter) CountByDateRange(_ context.Context, cat domain.Category, _, _ time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.ranges[cat], nil
}

func (f *fakeCounter) CountByShift(_ context.Context, cat domain.Category, _ time.Time) (int64, int64, error) {
	if f.err != nil {
		return 0, 0, f.err
	}
	pair := f.shifts[cat]
	return pair[0], pair[1], nil
}

type fakeLister struct {
	rows    map[domain.Category][][]string
	records map[domain.Category]interface{}
}

func (f *fakeLister) Rows(_ context.Context, cat domain.Category, _ domain.ListFilter) ([][]string, error) {
	return f.rows[cat], nil
}

func (f *fakeLister) Records(_ context.Context, cat domain.Category, _ domain.ListFilter) (interface{}, error) {
	return f.records[cat], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testService(t *testing.T, counter Counter, lister Lister) *Service {
	t.Helper()
	return NewService(counter, lister, t.TempDir(), nopLogger{})
}

func TestInterval(t *testing.T) {
	counter := &fakeCounter{ranges: map[domain.Category]int64{
		domain.CategoryVisitor:     10,
		domain.CategorySchool:      4,
		domain.CategoryInstitution: 2,
		domain.CategoryResearcher:  1,
	}}
	svc := testService(t, counter, &fakeLister{})

	rep, err := svc.Interval(context.Background(), time.Now().AddDate(0, -1, 0), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(17), rep.Total)
	require.Len(t, rep.Counts, 4)
	assert.Equal(t, domain.CategoryVisitor, rep.Counts[0].Category)
	assert.Equal(t, int64(10), rep.Counts[0].Count)
}

func TestIntervalStorageError(t *testing.T) {
	svc := testService(t, &fakeCounter{err: errors.New("boom")}, &fakeLister{})

	_, err := svc.Interval(context.Background(), time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrStorage)
}

func TestShift(t *testing.T) {
	counter := &fakeCounter{shifts: map[domain.Category][2]int64{
		domain.CategoryVisitor: {5, 3},
		domain.CategorySchool:  {2, 1},
	}}
	svc := testService(t, counter, &fakeLister{})

	rep, err := svc.Shift(context.Background(), time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(7), rep.TotalMorning)
	assert.Equal(t, int64(4), rep.TotalAfternoon)
}

func TestWriteIntervalCSV(t *testing.T) {
	counter := &fakeCounter{ranges: map[domain.Category]int64{domain.CategoryVisitor: 3}}
	dir := t.TempDir()
	svc := NewService(counter, &fakeLister{}, dir, nopLogger{})

	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)
	path, err := svc.WriteIntervalCSV(context.Background(), start, end)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relatorio_intervalo_2025-09-01_a_2025-09-30.csv"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6) // header + 4 categories + total
	assert.Equal(t, []string{"categoria", "quantidade"}, records[0])
	assert.Equal(t, []string{"visitante", "3"}, records[1])
	assert.Equal(t, []string{"total", "3"}, records[5])
}

func TestWriteShiftCSV(t *testing.T) {
	counter := &fakeCounter{shifts: map[domain.Category][2]int64{domain.CategoryVisitor: {2, 1}}}
	dir := t.TempDir()
	svc := NewService(counter, &fakeLister{}, dir, nopLogger{})

	path, err := svc.WriteShiftCSV(context.Background(), time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "relatorio_turno_2025-09-16.csv"), path)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"categoria", "manhã", "tarde"}, records[0])
	assert.Equal(t, []string{"visitante", "2", "1"}, records[1])
	assert.Equal(t, []string{"total", "2", "1"}, records[len(records)-1])
}

func TestExportCSV(t *testing.T) {
	lister := &fakeLister{rows: map[domain.Category][][]string{
		domain.CategoryVisitor: {
			{"2", "Maria", "feminino", "m@x.com", "(83) 99999-8888", "Rua A", "2", "2025-09-16", "manhã", "", "", ""},
			{"1", "João", "masculino", "j@x.com", "(83) 98888-7777", "Rua B", "1", "2025-09-12", "tarde", "", "", ""},
		},
	}}
	svc := testService(t, &fakeCounter{}, lister)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), domain.CategoryVisitor, domain.ListFilter{}, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.Columns[domain.CategoryVisitor], records[0])
	assert.Equal(t, "Maria", records[1][1])
}

func TestExportJSON(t *testing.T) {
	lister := &fakeLister{records: map[domain.Category]interface{}{
		domain.CategoryResearcher: []*domain.Researcher{
			{ID: 5, Name: "Ana", Email: "ana@ufpb.br", Institution: "UFPB"},
		},
	}}
	svc := testService(t, &fakeCounter{}, lister)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportJSON(context.Background(), domain.CategoryResearcher, domain.ListFilter{}, &buf))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Ana", decoded[0]["nome"])
	assert.Equal(t, "UFPB", decoded[0]["instituicao"])
}

func TestExportAll(t *testing.T) {
	lister := &fakeLister{rows: map[domain.Category][][]string{}}
	svc := testService(t, &fakeCounter{}, lister)

	dir := t.TempDir()
	paths, err := svc.ExportAll(context.Background(), dir, "csv", domain.ListFilter{})
	require.NoError(t, err)
	require.Len(t, paths, 4)
	assert.Contains(t, paths, filepath.Join(dir, "visitante_completo.csv"))
	assert.Contains(t, paths, filepath.Join(dir, "pesquisador_completo.csv"))
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}
