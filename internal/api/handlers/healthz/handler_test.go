package healthz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcja/agendamentos/internal/domain"
)

type fakeProber struct {
	err error
}

func (f *fakeProber) ListVisitors(context.Context, domain.ListFilter) ([]*domain.Visitor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Visitor{}, nil
}

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}

func TestHealthzOK(t *testing.T) {
	h := NewHandler(&fakeProber{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestHealthzDegraded(t *testing.T) {
	h := NewHandler(&fakeProber{err: errors.New("down")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}
