package stats

import (
	"time"

	"sellerpulse/models"
)

// SelectorAll requests a merged view across every seller instead of a
// single seller's week.
const SelectorAll = "all"

// Compute is the one shared implementation of the weekly stats pipeline:
// week window, daily aggregation, bonus evaluation and payout composition.
// It is a pure function of its arguments; both the HTTP service and the
// warm worker call it, so server-side and precomputed results can never
// drift apart.
//
// The logs argument may be a superset: entries for other sellers or outside
// the pay week containing ref are filtered out here rather than trusted to
// an upstream query. An empty week is a valid all-zero result, not an
// error.
func Compute(selector string, logs []models.SessionLog, targets models.BonusTargets, ref time.Time, loc *time.Location) models.WeeklyStats {
	weekStart, weekEnd := WeekRange(ref, loc)

	filtered := make([]models.SessionLog, 0, len(logs))
	for _, log := range logs {
		if selector != SelectorAll && log.SellerID != selector {
			continue
		}
		start := log.StartTime.In(loc)
		if start.Before(weekStart) || !start.Before(weekEnd) {
			continue
		}
		filtered = append(filtered, log)
	}

	days := AggregateByDay(filtered, targets, weekStart, loc)
	for i := range days {
		days[i].Bonus = DailyBonus(days[i], targets)
	}

	totals := SumWeek(days)
	totals.Bonus = WeeklyBonus(totals, targets)

	return models.WeeklyStats{
		DailyStats:    days,
		WeeklyTotals:  totals,
		Payout:        ComposePayout(days, totals.Bonus),
		WeekDateRange: WeekLabel(weekStart),
		WeekStart:     weekStart,
		WeekEnd:       weekEnd,
	}
}
