// Package types holds small wire-level value types shared by storage
// backends and HTTP models.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"
const dateLayoutBR = "02/01/2006"

// Date is a calendar date without a time component.
// It marshals as "YYYY-MM-DD" and tolerates timestamp suffixes on input,
// which PostgREST produces for DATE columns in some configurations.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the ISO form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// BR returns the DD/MM/YYYY form used on rendered pages.
func (d Date) BR() string {
	return d.Format(dateLayoutBR)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = Date{}
		return nil
	}
	// Cut a trailing timestamp: "2025-12-11T04:13:18.123456Z" -> "2025-12-11".
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner for DATE and TEXT columns.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = NewDate(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("cannot scan %T into types.Date", src)
	}
}

func (d *Date) scanString(s string) error {
	if i := strings.IndexAny(s, "T "); i > 0 {
		s = s[:i]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer; dates are bound as their ISO string so the
// same binding works for Postgres DATE and SQLite TEXT columns.
func (d Date) Value() (driver.Value, error) {
	return d.Format(dateLayout), nil
}
