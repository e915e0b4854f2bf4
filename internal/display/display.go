// Package display derives the date and year printed on the page.
package display

import (
	"fmt"
	"time"
)

// DateLayout renders "<full month> <day>, <year>", e.g. "October 19, 2026".
const DateLayout = "January 2, 2006"

// Values are derived from one instant and never cached.
type Values struct {
	FormattedDate string
	CurrentYear   int
}

// Compute formats t. The year always comes from the same instant as the date.
func Compute(t time.Time) Values {
	return Values{
		FormattedDate: t.Format(DateLayout),
		CurrentYear:   t.Year(),
	}
}

// Formatter computes Values from a clock in a fixed location.
type Formatter struct {
	now func() time.Time
	loc *time.Location
}

// NewFormatter returns a formatter reading the system clock in loc.
// A nil loc means time.Local.
func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{now: time.Now, loc: loc}
}

// WithClock returns a copy of f that reads now instead of the system clock.
func (f *Formatter) WithClock(now func() time.Time) *Formatter {
	return &Formatter{now: now, loc: f.loc}
}

// Current re-reads the clock on every call.
func (f *Formatter) Current() Values {
	return Compute(f.now().In(f.loc))
}

// Location returns the location dates are rendered in.
func (f *Formatter) Location() *time.Location {
	return f.loc
}

// LoadLocation resolves a timezone name. "" and "Local" mean the host zone.
func LoadLocation(name string) (*time.Location, error) {
	switch name {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}
