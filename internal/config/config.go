// Package config loads the application configuration from a TOML file with
// environment overrides for the connection secrets. Missing required values
// for the selected storage backend are a load-time error: the process must
// refuse to start rather than fail on the first request.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Storage backend identifiers
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendSupabase = "supabase"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	SQLite   SQLiteConfig   `toml:"sqlite"`
	Supabase SupabaseConfig `toml:"supabase"`
	Reports  ReportsConfig  `toml:"reports"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	TemplatesDir    string `toml:"templates_dir"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
}

type StorageConfig struct {
	// Backend selects the adapter: sqlite, postgres or supabase.
	Backend string `toml:"backend"`
}

type DatabaseConfig struct {
	// URL takes precedence over the discrete fields when set
	// (also settable via DATABASE_URL).
	URL             string `toml:"url"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN assembles the lib/pq connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	sslmode := d.SSLMode
	if sslmode == "" {
		sslmode = "require"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslmode)
}

type SQLiteConfig struct {
	Path string `toml:"path"`
}

type SupabaseConfig struct {
	URL        string `toml:"url"`
	AnonKey    string `toml:"anon_key"`
	ServiceKey string `toml:"service_role_key"`
	Timeout    int    `toml:"timeout"`
}

type ReportsConfig struct {
	Dir string `toml:"dir"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load reads the TOML file at path, applies environment overrides and
// defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets deployment environments override connection targets without
// editing the config file. Secrets belong in env vars, not in the repo.
func (c *Config) applyEnv() {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Supabase.URL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		c.Supabase.AnonKey = v
	}
	if v := os.Getenv("SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		c.Supabase.ServiceKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.TemplatesDir == "" {
		c.Server.TemplatesDir = "templates"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.SQLite.Path == "" {
		c.SQLite.Path = "agendamentos.db"
	}
	if c.Supabase.Timeout == 0 {
		c.Supabase.Timeout = 10
	}
	if c.Reports.Dir == "" {
		c.Reports.Dir = "relatorios"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "agendamentos"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendSQLite:
		// Path always has a default; nothing else required.
	case BackendPostgres:
		if c.Database.URL == "" && (c.Database.Host == "" || c.Database.DBName == "") {
			return fmt.Errorf("config: postgres backend requires database.url (or DATABASE_URL) or host+dbname")
		}
	case BackendSupabase:
		if c.Supabase.URL == "" || c.Supabase.AnonKey == "" {
			return fmt.Errorf("config: supabase backend requires supabase.url and supabase.anon_key (or SUPABASE_URL / SUPABASE_ANON_KEY)")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}
