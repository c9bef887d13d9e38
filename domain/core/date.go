package core

import (
	"time"
)

// Date represents a civil calendar date with no time-of-day component.
// Internally it is midnight UTC, so two Dates built from the same
// year/month/day always compare equal regardless of source location.
type Date time.Time

// NewDate creates a date from year, month and day
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its calendar date
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Time returns the underlying time.Time (midnight UTC)
func (d Date) Time() time.Time {
	return time.Time(d)
}

// AddDays returns the date n days later (negative n goes back)
func (d Date) AddDays(n int) Date {
	return Date(d.Time().AddDate(0, 0, n))
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// Day returns the 1-based day of month
func (d Date) Day() int {
	return d.Time().Day()
}

// Month returns the month
func (d Date) Month() time.Month {
	return d.Time().Month()
}

// Year returns the year
func (d Date) Year() int {
	return d.Time().Year()
}

// IsZero checks if the date is the zero value
func (d Date) IsZero() bool {
	return d.Time().IsZero()
}

// Before returns true if d is before other
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// After returns true if d is after other
func (d Date) After(other Date) bool {
	return d.Time().After(other.Time())
}

// Equal returns true if d and other are the same calendar date
func (d Date) Equal(other Date) bool {
	return d.Time().Equal(other.Time())
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// ColumnHeader formats the date for roster grid column headers, e.g. "Mon 03-Mar"
func (d Date) ColumnHeader() string {
	return d.Time().Format("Mon 02-Jan")
}

// MonthYear formats the date as "January_2006", used in export filenames
func (d Date) MonthYear() string {
	return d.Time().Format("January_2006")
}

// ParseDate parses a YYYY-MM-DD string into a Date
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// NextMonthStart returns the first day of the month after the given time.
// December rolls over to January of the following year.
func NextMonthStart(now time.Time) Date {
	return Date(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0))
}

// MarshalJSON encodes the date as a YYYY-MM-DD string
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a YYYY-MM-DD string
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
