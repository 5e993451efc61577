// Package journalday maps instants to canonical journal day keys
// A journal day is the local calendar date an entry is attributed to after
// subtracting a cutoff offset: entries before local midnight plus offset
// still count toward the previous day. The instant exactly at the cutoff
// belongs to the new day.
package journalday

import (
	"fmt"
	"time"
)

// Day is a canonical YYYY-MM-DD key
// zero padding keeps lexicographic order equal to chronological order
type Day string

// New builds a Day from calendar components
func New(year int, month time.Month, day int) Day {
	return Day(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// Of reads the local calendar date of t in loc
func Of(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return New(y, m, d)
}

// KeyOf resolves the journal day for t under offsetHours in loc
// the mapping is a step function constant on half open cutoff intervals,
// inclusive of the boundary on the new day side
// the offset is subtracted from the local wall clock, not from the instant,
// so a 05:00 local reading lands on the same journal day on DST transition
// days as on any other day
func KeyOf(t time.Time, offsetHours int, loc *time.Location) Day {
	if loc == nil {
		loc = time.UTC
	}
	lt := t.In(loc)
	y, m, d := lt.Date()
	shifted := time.Date(y, m, d, lt.Hour()-offsetHours, lt.Minute(), lt.Second(), lt.Nanosecond(), loc)
	sy, sm, sd := shifted.Date()
	return New(sy, sm, sd)
}

// Parse validates and canonicalizes a YYYY-MM-DD string
func Parse(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", fmt.Errorf("invalid day %q: %w", s, err)
	}
	y, m, d := t.Date()
	return New(y, m, d), nil
}

// Time returns midnight UTC of the day, zero time for a malformed key
func (d Day) Time() time.Time {
	t, err := time.Parse("2006-01-02", string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays steps the day forward or backward by n calendar days
func (d Day) AddDays(n int) Day {
	t := d.Time()
	y, m, dd := t.Date()
	return Of(time.Date(y, m, dd+n, 0, 0, 0, 0, time.UTC), time.UTC)
}

// Prev is the previous calendar day
func (d Day) Prev() Day { return d.AddDays(-1) }

// Next is the following calendar day
func (d Day) Next() Day { return d.AddDays(1) }

// Weekday returns the day of week, Sunday is 0
func (d Day) Weekday() time.Weekday { return d.Time().Weekday() }

// Month returns the calendar month of the day
func (d Day) Month() time.Month { return d.Time().Month() }

// Year returns the calendar year of the day
func (d Day) Year() int { return d.Time().Year() }

// StartOfWeek walks back to the Sunday of the week containing d
func (d Day) StartOfWeek() Day {
	return d.AddDays(-int(d.Weekday()))
}

// Before reports whether d is chronologically earlier than other
func (d Day) Before(other Day) bool { return d < other }

// String implements fmt.Stringer
func (d Day) String() string { return string(d) }
