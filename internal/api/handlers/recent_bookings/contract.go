package recent_bookings

import (
	"context"

	"github.com/fcja/agendamentos/internal/service/bookings"
)

// BookingService is the slice of the bookings service the handler needs.
type BookingService interface {
	Recent(ctx context.Context, limit uint64) *bookings.RecentBookings
}

// Logger is the narrow logging interface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
