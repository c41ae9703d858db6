package stats

import (
	"time"

	"sellerpulse/models"
)

// daysPerWeek is the fixed size of a pay week; AggregateByDay always emits
// exactly this many entries, zero-valued where no sessions exist.
const daysPerWeek = 7

// AggregateByDay buckets session logs into the seven calendar days of the
// pay week beginning at weekStart and sums items, duration and base pay per
// day. A session belongs wholly to the day containing its start time in
// loc; sessions crossing midnight are not split, their full span counts on
// the start day. Logs outside [weekStart, weekStart+7d) and logs whose end
// precedes their start are skipped so sums can never go negative.
func AggregateByDay(logs []models.SessionLog, targets models.BonusTargets, weekStart time.Time, loc *time.Location) []models.DailyStat {
	weekEnd := weekStart.AddDate(0, 0, daysPerWeek)

	days := make([]models.DailyStat, daysPerWeek)
	for i := range days {
		date := weekStart.AddDate(0, 0, i)
		days[i] = models.DailyStat{
			Date:    date,
			DayName: date.Format("Monday"),
		}
	}

	for _, log := range logs {
		start := log.StartTime.In(loc)
		if start.Before(weekStart) || !start.Before(weekEnd) {
			continue
		}
		if log.EndTime.Before(log.StartTime) {
			continue
		}

		// Match on the calendar day, not elapsed hours: in a DST zone a
		// day can be 23 or 25 hours long, so hour division would land
		// sessions on the wrong slot after a transition.
		dayMidnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		idx := -1
		for i := range days {
			if days[i].Date.Equal(dayMidnight) {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}

		days[idx].BrandedItemsSold += log.BrandedItemsSold
		days[idx].FreeSizeItemsSold += log.FreeSizeItemsSold
		days[idx].DurationHours += log.DurationHours()
	}

	for i := range days {
		days[i].TotalItems = days[i].BrandedItemsSold + days[i].FreeSizeItemsSold
		days[i].BasePay = days[i].DurationHours * targets.BasePayPerHour
	}
	return days
}
