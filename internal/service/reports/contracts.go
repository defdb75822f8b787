package reports

import (
	"context"
	"time"

	"github.com/fcja/agendamentos/internal/domain"
)

// Counter is the slice of the storage contract the report queries need.
type Counter interface {
	CountByDateRange(ctx context.Context, cat domain.Category, start, end time.Time) (int64, error)
	CountByShift(ctx context.Context, cat domain.Category, date time.Time) (morning, afternoon int64, err error)
}

// Lister provides category listings in both export shapes. Implemented by
// the bookings service.
type Lister interface {
	Rows(ctx context.Context, cat domain.Category, f domain.ListFilter) ([][]string, error)
	Records(ctx context.Context, cat domain.Category, f domain.ListFilter) (interface{}, error)
}

// Logger is the narrow logging interface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
