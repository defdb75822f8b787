package bookings

import (
	"context"

	"github.com/fcja/agendamentos/internal/domain"
)

// Store is the slice of the storage contract this service needs.
type Store interface {
	InsertVisitor(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error)
	InsertSchool(ctx context.Context, s *domain.School) (*domain.School, error)
	InsertInstitution(ctx context.Context, i *domain.Institution) (*domain.Institution, error)
	InsertResearcher(ctx context.Context, r *domain.Researcher) (*domain.Researcher, error)

	ListVisitors(ctx context.Context, f domain.ListFilter) ([]*domain.Visitor, error)
	ListSchools(ctx context.Context, f domain.ListFilter) ([]*domain.School, error)
	ListInstitutions(ctx context.Context, f domain.ListFilter) ([]*domain.Institution, error)
	ListResearchers(ctx context.Context, f domain.ListFilter) ([]*domain.Researcher, error)
}

// Logger is the narrow logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
