// Package dates normalizes calendar-day inputs to UTC instants.
//
// A "YYYY-MM-DD" string always means that calendar day at 00:00:00 UTC,
// never a local time, so a stored day survives any server timezone.
package dates

import (
	"errors"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Range is an inclusive [From, To] window over appointment dates.
type Range struct {
	From time.Time
	To   time.Time
}

// ParseDay parses a calendar-day string. The literal YYYY-MM-DD form is
// pinned to UTC midnight; anything else falls back to generic parsing.
func ParseDay(value string) (time.Time, error) {
	if t, err := time.ParseInLocation(DayLayout, value, time.UTC); err == nil {
		return t, nil
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// DayRange covers one calendar day: [00:00:00.000, 23:59:59.999] UTC.
func DayRange(day time.Time) Range {
	d := day.UTC()
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return Range{
		From: from,
		To:   EndOfDay(from),
	}
}

// MonthRange covers a whole month. The last day is computed as day 0 of
// the following month, which time.Date normalizes backwards.
func MonthRange(year int, month int) Range {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.Month(month+1), 0, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return Range{From: from, To: to}
}

// ReportRange builds the inclusive range of the reporting query. An
// absent lower bound defaults to the Unix epoch; an absent upper bound
// defaults to now. The upper bound is always pushed to the end of its
// calendar day in UTC.
func ReportRange(from string, to string) (Range, error) {
	start := time.Unix(0, 0).UTC()
	if from != "" {
		t, err := ParseDay(from)
		if err != nil {
			return Range{}, err
		}
		start = t
	}

	endBase := time.Now().UTC()
	if to != "" {
		t, err := ParseDay(to)
		if err != nil {
			return Range{}, err
		}
		endBase = t
	}

	return Range{From: start, To: EndOfDay(endBase)}, nil
}

// EndOfDay returns 23:59:59.999 UTC of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
