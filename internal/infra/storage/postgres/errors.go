package postgres

import "errors"

var (
	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("postgres.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("postgres.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("postgres.repository: failed to scan row")
)
