package stats

import (
	"fmt"
	"time"
)

// Pay weeks are anchored to Wednesday: every window runs Wednesday 00:00
// through the following Wednesday 00:00 (exclusive) in the business
// timezone.
const anchorWeekday = time.Wednesday

// WeekRange returns the pay week containing ref as [start, end) where start
// is the most recent anchor-weekday midnight in loc and end is exactly
// seven days later. Any two instants inside the same window map to the same
// start, and the anchor alignment is applied to whatever the caller passes
// in, so a drifted "week start" is snapped back onto the anchor.
func WeekRange(ref time.Time, loc *time.Location) (start, end time.Time) {
	local := ref.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	offset := (int(midnight.Weekday()) - int(anchorWeekday) + 7) % 7
	start = midnight.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// DisplayEnd converts a week start into the inclusive last calendar day of
// the window, used for UI labels. Range queries must use the exclusive end
// from WeekRange instead.
func DisplayEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, 6)
}

// WeekLabel formats a pay week as e.g. "Aug 27 - Sep 2, 2025". The year is
// repeated on both sides when the window straddles a year boundary.
func WeekLabel(start time.Time) string {
	end := DisplayEnd(start)
	if start.Year() == end.Year() {
		return fmt.Sprintf("%s - %s, %d", start.Format("Jan 2"), end.Format("Jan 2"), start.Year())
	}
	return fmt.Sprintf("%s, %d - %s, %d", start.Format("Jan 2"), start.Year(), end.Format("Jan 2"), end.Year())
}
