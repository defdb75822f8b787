// Package factory selects and opens the configured storage backend. It lives
// in its own package so the storage contract package does not import its own
// implementations.
package factory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fcja/agendamentos/internal/config"
	"github.com/fcja/agendamentos/internal/infra/storage"
	"github.com/fcja/agendamentos/internal/infra/storage/postgres"
	"github.com/fcja/agendamentos/internal/infra/storage/sqlite"
	"github.com/fcja/agendamentos/internal/infra/storage/supabase"
)

// New opens the backend selected in the configuration. Database-backed
// adapters verify connectivity with a ping before being returned; the entry
// point must register the matching driver with a blank import.
func New(cfg *config.Config, log storage.Logger) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		db, err := openDB("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, err
		}
		if cfg.Database.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		}
		if cfg.Database.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		}
		if cfg.Database.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
		}
		log.Info("storage backend: postgres")
		return postgres.NewRepository(db), nil

	case config.BackendSQLite:
		db, err := openDB("sqlite3", cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		// The sqlite driver serializes writers itself, but a single
		// connection avoids SQLITE_BUSY under concurrent form submissions.
		db.SetMaxOpenConns(1)
		log.Info("storage backend: sqlite at %s", cfg.SQLite.Path)
		return sqlite.NewRepository(db), nil

	case config.BackendSupabase:
		timeout := time.Duration(cfg.Supabase.Timeout) * time.Second
		log.Info("storage backend: supabase")
		return supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey,
			cfg.Supabase.ServiceKey, timeout, log), nil
	}

	return nil, fmt.Errorf("storage: unknown backend %q", cfg.Storage.Backend)
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", driver, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: ping %s: %w", driver, err)
	}
	return db, nil
}
