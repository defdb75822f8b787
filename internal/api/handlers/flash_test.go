package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeFlashOK(t *testing.T) {
	r := httptest.NewRequest("GET", "/?ok=agendado", nil)
	f := MakeFlash(r)
	require.NotNil(t, f)
	assert.Equal(t, "ok", f.Kind)
	assert.Equal(t, "Agendamento realizado com sucesso.", f.Text)
}

func TestMakeFlashError(t *testing.T) {
	r := httptest.NewRequest("GET", "/agendar/visitante?error=dia_fechado", nil)
	f := MakeFlash(r)
	require.NotNil(t, f)
	assert.Equal(t, "error", f.Kind)
	assert.Contains(t, f.Text, "não abre")
}

func TestMakeFlashUnknownKeyIsNotEchoed(t *testing.T) {
	r := httptest.NewRequest("GET", "/?error=%3Cscript%3E", nil)
	f := MakeFlash(r)
	require.NotNil(t, f)
	assert.NotContains(t, f.Text, "<script>")
}

func TestMakeFlashNone(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, MakeFlash(r))
}

func TestMakeFlashErrorWinsOverOK(t *testing.T) {
	r := httptest.NewRequest("GET", "/?ok=agendado&error=erro_banco", nil)
	f := MakeFlash(r)
	require.NotNil(t, f)
	assert.Equal(t, "error", f.Kind)
}
