package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and query-string format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or time zone. Two Dates are
// equal exactly when they denote the same day, so == is a valid comparison.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the calendar day of t in t's own location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string. RFC 3339 timestamps are also accepted
// and truncated to their date part.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t), nil
	}
	return Date{}, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDate, s, DateLayout)
}

// Time returns midnight UTC on d. This is the value handed to the database.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (before, when n is negative).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Time().AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD" or an RFC 3339 timestamp.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: date must be a string", ErrInvalidDate)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateFromNullable converts an optional database time into an optional Date.
func DateFromNullable(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(t.UTC())
	return &d
}
