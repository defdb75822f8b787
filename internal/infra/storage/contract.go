// Package storage defines the data access contract shared by every backend.
//
// The application has migrated between an embedded file database, a
// self-hosted Postgres, a hosted Postgres and Supabase's PostgREST API over
// the years; handlers and services depend only on this interface, so swapping
// the backend is a config change, not a code change.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/fcja/agendamentos/internal/domain"
)

// ErrUserNotFound is returned by GetActiveUser when no active account
// matches the username. Shared across backends so the auth service can
// translate it uniformly.
var ErrUserNotFound = errors.New("storage: user not found")

// Store is the backend contract.
//
// Inserts expect payloads already validated and normalized by the category
// services, and return the stored record with its server-assigned id.
// Lists follow the ordering contract documented on domain.ListFilter and
// return an empty slice, never an error, on zero matches.
type Store interface {
	InsertVisitor(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	InsertSchool(ctx context.Context, s *domain.School) (*domain.School, error)
	InsertInstitution(ctx context.Context, i *domain.Institution) (*domain.Institution, error)
	InsertResearcher(ctx context.Context, r *domain.Researcher) (*domain.Researcher, error)

	ListVisitors(ctx context.Context, f domain.ListFilter) ([]*domain.Visitor, error)
	ListSchools(ctx context.Context, f domain.ListFilter) ([]*domain.School, error)
	ListInstitutions(ctx context.Context, f domain.ListFilter) ([]*domain.Institution, error)
	ListResearchers(ctx context.Context, f domain.ListFilter) ([]*domain.Researcher, error)

	// CountByDateRange counts rows of one category with data between start
	// and end, both inclusive.
	CountByDateRange(ctx context.Context, cat domain.Category, start, end time.Time) (int64, error)

	// CountByShift splits the rows of one exact date by normalized shift.
	CountByShift(ctx context.Context, cat domain.Category, date time.Time) (morning, afternoon int64, err error)

	// GetActiveUser fetches an operator account by username, active only.
	GetActiveUser(ctx context.Context, username string) (*domain.User, error)

	// ListUsers lists every operator account, newest first.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// CreateUser stores a new operator account. passwordHash must already be
	// a bcrypt hash; this layer never sees plain passwords.
	CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error)

	// Init creates the schema if it does not exist. Idempotent; invoked once
	// per process by the entry points, never from request handling.
	Init(ctx context.Context) error

	Close() error
}

// Logger is the narrow logging interface the backends need.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
