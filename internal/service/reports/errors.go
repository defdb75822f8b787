package reports

import "errors"

var (
	// ErrStorage wraps backend failures during counting or listing.
	ErrStorage = errors.New("service.reports: storage error")

	// ErrWrite is returned when a report or export file cannot be produced.
	ErrWrite = errors.New("service.reports: failed to write file")
)
