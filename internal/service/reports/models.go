package reports

import (
	"time"

	"github.com/fcja/agendamentos/internal/domain"
)

// CategoryCount is one line of an interval report.
type CategoryCount struct {
	Category domain.Category
	Count    int64
}

// IntervalReport counts bookings per category inside a date interval,
// both bounds inclusive.
type IntervalReport struct {
	Start  time.Time
	End    time.Time
	Counts []CategoryCount
	Total  int64
}

// ShiftCount is one line of a shift report.
type ShiftCount struct {
	Category  domain.Category
	Morning   int64
	Afternoon int64
}

// ShiftReport splits one day's bookings by half-day shift per category.
type ShiftReport struct {
	Date           time.Time
	Counts         []ShiftCount
	TotalMorning   int64
	TotalAfternoon int64
}
