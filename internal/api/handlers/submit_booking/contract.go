package submit_booking

import (
	"context"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/service/bookings"
)

// BookingService is the slice of the bookings service the handler needs.
type BookingService interface {
	CreateVisitor(ctx context.Context, req *bookings.CreateVisitorRequest) (*domain.Visitor, error)
	CreateSchool(ctx context.Context, req *bookings.CreateSchoolRequest) (*domain.School, error)
	CreateInstitution(ctx context.Context, req *bookings.CreateInstitutionRequest) (*domain.Institution, error)
	CreateResearcher(ctx context.Context, req *bookings.CreateResearcherRequest) (*domain.Researcher, error)
}

// Logger is the narrow logging interface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
