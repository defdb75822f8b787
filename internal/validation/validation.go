// Package validation gates every inbound booking field before it reaches
// storage and canonicalizes ambiguous inputs. All functions are total: bad
// input yields false (or a not-ok result), never a panic.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/fcja/agendamentos/internal/domain"
)

var (
	// Local part, host and TLD: anything but '@' and whitespace.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Brazilian phone shape: optional +55/55 country code, optional 2-digit
	// area code with or without parentheses, 4-5 digit prefix, 4 digit suffix.
	// Accepts "(83) 99999-8888", "83 99999-8888", "83999998888".
	phoneRe = regexp.MustCompile(`^(\+?55\s?)?\(?\d{2}\)?\s?\d{4,5}-?\d{4}$`)
)

// ValidEmail reports whether s has the e-mail shape used on the forms.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone reports whether s is a dialable Brazilian phone number.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(strings.TrimSpace(s))
}

// ParseDate accepts "YYYY-MM-DD" (form input type=date) or "DD/MM/YYYY"
// (operator input) and returns the calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		return time.Parse(domain.DateFormatBR, s)
	}
	return time.Parse(domain.DateFormat, s)
}

// ValidVisitDate reports whether s is a date the site is open for walk-in
// visits: Tuesday through Sunday. Monday is the closed day.
func ValidVisitDate(s string) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return d.Weekday() != time.Monday
}

// ValidResearchDate reports whether s is a date the archive receives
// researchers: Monday through Friday.
func ValidResearchDate(s string) bool {
	d, err := ParseDate(s)
	if err != nil {
		return false
	}
	return d.Weekday() != time.Saturday && d.Weekday() != time.Sunday
}

// NormalizeShift canonicalizes the shift field. It accepts "manha" and
// "manhã" in any case with surrounding whitespace, and "tarde". Anything else
// returns ok=false and the caller must reject the submission.
func NormalizeShift(s string) (domain.Shift, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manha", "manhã":
		return domain.ShiftMorning, true
	case "tarde":
		return domain.ShiftAfternoon, true
	}
	return "", false
}
