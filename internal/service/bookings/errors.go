package bookings

import "errors"

var (
	// ErrInvalidEmail is returned when the email field fails validation.
	ErrInvalidEmail = errors.New("service.bookings: invalid email")

	// ErrInvalidPhone is returned when the phone field fails validation.
	ErrInvalidPhone = errors.New("service.bookings: invalid phone")

	// ErrInvalidDate is returned when the visit date cannot be parsed.
	ErrInvalidDate = errors.New("service.bookings: invalid date")

	// ErrInvalidVisitDate is returned when a visit falls on a closed day.
	ErrInvalidVisitDate = errors.New("service.bookings: foundation closed on that date")

	// ErrInvalidResearchDate is returned when a research visit falls on a
	// weekend, when the archive staff is off.
	ErrInvalidResearchDate = errors.New("service.bookings: archive closed on that date")

	// ErrInvalidShift is returned when the shift is not one of the two
	// accepted half-day values.
	ErrInvalidShift = errors.New("service.bookings: invalid shift")

	// ErrStorage wraps backend failures.
	ErrStorage = errors.New("service.bookings: storage error")
)
