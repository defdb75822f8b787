package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[logs]
file = "test.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "templates", cfg.Server.TemplatesDir)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "agendamentos.db", cfg.SQLite.Path)
	assert.Equal(t, "relatorios", cfg.Reports.Dir)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestLoadPostgres(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "postgres"

[database]
host = "localhost"
port = 5432
user = "fcja"
password = "secret"
dbname = "agendamentos"
sslmode = "disable"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "host=localhost port=5432 user=fcja password=secret dbname=agendamentos sslmode=disable", cfg.Database.DSN())
}

func TestDSNDefaultsToRequireSSL(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "x"}
	assert.Contains(t, d.DSN(), "sslmode=require")
}

func TestDatabaseURLTakesPrecedence(t *testing.T) {
	d := DatabaseConfig{URL: "postgres://u:p@db/x", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@db/x", d.DSN())
}

func TestLoadPostgresMissingTarget(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "postgres"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadSupabaseRequiresKeys(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "supabase"

[supabase]
url = "https://xyz.supabase.co"
`)

	_, err := Load(path)
	require.Error(t, err)

	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anon-key", cfg.Supabase.AnonKey)
	assert.Equal(t, 10, cfg.Supabase.Timeout)
}

func TestLoadUnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "oracle"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env@host/db")
	path := writeConfig(t, `
[storage]
backend = "postgres"

[database]
url = "postgres://file@host/db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env@host/db", cfg.Database.URL)
}
