package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manila(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	return loc
}

func TestWeekRangeStartsOnWednesday(t *testing.T) {
	// Two full weeks of reference days, every one must land on a
	// Wednesday-midnight start with the ref inside [start, end).
	base := time.Date(2025, 8, 20, 15, 30, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		ref := base.AddDate(0, 0, i)
		start, end := WeekRange(ref, time.UTC)

		assert.Equal(t, time.Wednesday, start.Weekday(), "ref %s", ref)
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, start.AddDate(0, 0, 7), end)
		assert.False(t, ref.Before(start), "ref %s before start %s", ref, start)
		assert.True(t, ref.Before(end), "ref %s not before end %s", ref, end)
	}
}

func TestWeekRangeStableWithinWindow(t *testing.T) {
	// Every instant inside one window maps to the same start.
	wantStart := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
	for hour := 0; hour < 7*24; hour += 5 {
		ref := wantStart.Add(time.Duration(hour) * time.Hour)
		start, _ := WeekRange(ref, time.UTC)
		assert.Equal(t, wantStart, start, "ref %s", ref)
	}

	// The first instant of the next window starts a new week.
	next, _ := WeekRange(wantStart.AddDate(0, 0, 7), time.UTC)
	assert.Equal(t, wantStart.AddDate(0, 0, 7), next)
}

func TestWeekRangeSnapsDriftedStart(t *testing.T) {
	// A caller passing a non-anchor "week start" gets realigned to the
	// Wednesday that precedes it rather than trusted as-is.
	saturday := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	start, _ := WeekRange(saturday, time.UTC)
	assert.Equal(t, time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), start)

	// An already-aligned start maps to itself.
	again, _ := WeekRange(start, time.UTC)
	assert.Equal(t, start, again)
}

func TestWeekRangeUsesBusinessTimezone(t *testing.T) {
	loc := manila(t)

	// 18:00 UTC on Tuesday Aug 26 is already 02:00 Wednesday Aug 27 in
	// Manila, so the two zones disagree about which pay week it is in.
	ref := time.Date(2025, 8, 26, 18, 0, 0, 0, time.UTC)

	utcStart, _ := WeekRange(ref, time.UTC)
	assert.Equal(t, time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC), utcStart)

	mnlStart, _ := WeekRange(ref, loc)
	assert.Equal(t, time.Date(2025, 8, 27, 0, 0, 0, 0, loc), mnlStart)
}

func TestDisplayEnd(t *testing.T) {
	start := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC), DisplayEnd(start))
}

func TestWeekLabel(t *testing.T) {
	sameYear := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Aug 27 - Sep 2, 2025", WeekLabel(sameYear))

	straddling := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Dec 31, 2025 - Jan 6, 2026", WeekLabel(straddling))
}
