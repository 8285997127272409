// internal/models/date.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or timezone. Two dates are
// equal iff year, month and day match.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a timestamp to its calendar date in the timestamp's
// location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current calendar date in server-local time. Callers on
// request paths resolve it once and pass it down so tests can pin the clock.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format(DateLayout)
}

// Time returns midnight UTC of the date. Only used for formatting and
// arithmetic; comparisons go through Equal/Before.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Equal(o Date) bool {
	return d.Year == o.Year && d.Month == o.Month && d.Day == o.Day
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) After(o Date) bool {
	return o.Before(d)
}

// AddDays shifts the date by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value stores the date as its YYYY-MM-DD string.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return fmt.Errorf("cannot scan %T into Date", src)
}

// DateSet is an append-ordered collection of distinct calendar dates. It is
// persisted as a jsonb array of YYYY-MM-DD strings so a habit's completion
// history travels in one column and updates in one statement.
type DateSet []Date

// Contains reports membership by calendar-day equality.
func (s DateSet) Contains(d Date) bool {
	for _, e := range s {
		if e.Equal(d) {
			return true
		}
	}
	return false
}

// Add appends d unless it is already present.
func (s DateSet) Add(d Date) DateSet {
	if s.Contains(d) {
		return s
	}
	return append(s, d)
}

// Remove drops every occurrence of d, keeping order of the rest.
func (s DateSet) Remove(d Date) DateSet {
	out := s[:0:0]
	for _, e := range s {
		if !e.Equal(d) {
			out = append(out, e)
		}
	}
	return out
}

func (s DateSet) Value() (driver.Value, error) {
	if s == nil {
		s = DateSet{}
	}
	raw := make([]string, len(s))
	for i, d := range s {
		raw[i] = d.String()
	}
	return json.Marshal(raw)
}

func (s *DateSet) Scan(src interface{}) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*s = DateSet{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DateSet", src)
	}

	var raw []string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	set := make(DateSet, 0, len(raw))
	for _, rs := range raw {
		d, err := ParseDate(rs)
		if err != nil {
			return err
		}
		set = set.Add(d) // drop duplicates a previous writer may have left
	}
	*s = set
	return nil
}
