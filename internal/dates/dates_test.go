package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayPinsUTCMidnight(t *testing.T) {
	got, err := ParseDay("2025-03-10")
	require.NoError(t, err)

	want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
	assert.Equal(t, time.UTC, got.Location())
}

func TestParseDayFallback(t *testing.T) {
	got, err := ParseDay("2025-03-10T15:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 15, 30, 0, 0, time.UTC), got)

	_, err = ParseDay("not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = ParseDay("")
	assert.Error(t, err)
}

func TestDayRangeBounds(t *testing.T) {
	day, err := ParseDay("2025-03-10")
	require.NoError(t, err)

	rng := DayRange(day)

	assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(t, time.Date(2025, time.March, 10, 23, 59, 59, 999000000, time.UTC), rng.To)

	// an appointment at the previous day's last millisecond stays out
	before := time.Date(2025, time.March, 9, 23, 59, 59, 999000000, time.UTC)
	assert.True(t, before.Before(rng.From))

	// the next day's midnight stays out
	after := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, after.After(rng.To))
}

func TestMonthRange(t *testing.T) {
	rng := MonthRange(2025, 3)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), rng.From)
	assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 999000000, time.UTC), rng.To)

	april := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, april.After(rng.To))
}

func TestMonthRangeDecember(t *testing.T) {
	rng := MonthRange(2025, 12)

	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999000000, time.UTC), rng.To)
}

func TestReportRangeDefaults(t *testing.T) {
	rng, err := ReportRange("", "2025-06-15")
	require.NoError(t, err)

	assert.Equal(t, time.Unix(0, 0).UTC(), rng.From)
	assert.Equal(t, time.Date(2025, time.June, 15, 23, 59, 59, 999000000, time.UTC), rng.To)
}

func TestReportRangeOpenUpperBound(t *testing.T) {
	rng, err := ReportRange("2025-01-01", "")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), rng.From)

	// upper bound lands at the end of today's UTC calendar day
	now := time.Now().UTC()
	assert.Equal(t, EndOfDay(now), rng.To)
}

func TestReportRangeInvalid(t *testing.T) {
	_, err := ReportRange("bogus", "")
	assert.Error(t, err)

	_, err = ReportRange("", "bogus")
	assert.Error(t, err)
}

func TestEndOfDayExcludesNextMidnight(t *testing.T) {
	day, err := ParseDay("2025-03-10")
	require.NoError(t, err)

	bound := EndOfDay(day)
	nextMidnight := time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC)
	assert.True(t, nextMidnight.After(bound),
		"an entry stamped at the next day's midnight must fall outside the bound")
}

func TestEndOfDayIgnoresServerZone(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	local := time.Date(2025, time.March, 10, 20, 0, 0, 0, loc) // 04:00 UTC next day

	got := EndOfDay(local)
	assert.Equal(t, time.Date(2025, time.March, 11, 23, 59, 59, 999000000, time.UTC), got)
}
