// Package timeofday provides wall-clock arithmetic for "HH:MM" times and
// timezone-free calendar dates.
package timeofday

import (
	"errors"
	"fmt"
	"time"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

var (
	ErrInvalidClock = errors.New("invalid time format, use HH:MM")
	ErrInvalidDate  = errors.New("invalid date format, use YYYY-MM-DD")
)

// Minutes is a wall-clock time expressed as minutes since midnight.
type Minutes int

// ParseClock converts an "HH:MM" 24-hour string into minutes since midnight.
func ParseClock(s string) (Minutes, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Minutes(t.Hour()*60 + t.Minute()), nil
}

// String formats m as zero-padded "HH:MM".
func (m Minutes) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Interval is a half-open time-of-day range [Start, End).
type Interval struct {
	Start Minutes
	End   Minutes
}

// ParseInterval parses both bounds. It does not check their order.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: s, End: e}, nil
}

// Valid reports whether the interval is non-empty.
func (i Interval) Valid() bool {
	return i.Start < i.End
}

func (i Interval) Duration() Minutes {
	if !i.Valid() {
		return 0
	}
	return i.End - i.Start
}

// Contains reports whether o lies entirely within i, bounds inclusive.
func (i Interval) Contains(o Interval) bool {
	return o.Start >= i.Start && o.End <= i.End
}

// Overlaps reports whether the two half-open intervals share any minute.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) String() string {
	return i.Start.String() + "-" + i.End.String()
}

// ParseDate parses an ISO calendar date into midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// Date truncates t to its calendar date at midnight UTC, keeping the
// year/month/day as seen in t's own location.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDate compares calendar dates, ignoring clock and location.
func SameDate(a, b time.Time) bool {
	return Date(a).Equal(Date(b))
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
