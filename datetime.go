package strkit

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
)

// DefaultTimestampLayout reads values like "2025-03-31 04:12:15".
const DefaultTimestampLayout = "2006-01-02 15:04:05"

const day = 24 * time.Hour

// DaysDifference returns the number of whole days from b to a, truncated
// toward zero. It is negative when a is before b.
func DaysDifference(a, b time.Time) int64 {
	return int64(a.Sub(b) / day)
}

// AddDays moves t by the given number of calendar days, keeping the wall clock.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

func SubtractDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, -days)
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// EndOfDay returns the last nanosecond of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return now.With(t).EndOfDay()
}

// ParseTimestamp parses s with layout in loc and returns Unix milliseconds.
// An empty layout means DefaultTimestampLayout.
func ParseTimestamp(s, layout string, loc *time.Location) (int64, error) {
	if layout == "" {
		layout = DefaultTimestampLayout
	}

	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return 0, errors.Wrapf(err, "can not parse timestamp %q", s)
	}

	return t.UnixMilli(), nil
}
