package stats

import "sellerpulse/models"

// Bonus rule: the duration target must be met, and at least one of the two
// item targets. Comparisons are inclusive and a target of 0 always passes.
// Bonuses are all-or-nothing, never prorated.

// DailyBonus returns the bonus earned by one day's stats: either 0 or the
// full configured daily amount.
func DailyBonus(day models.DailyStat, targets models.BonusTargets) float64 {
	if day.DurationHours < targets.DailyTargetDurationHours {
		return 0
	}
	if day.BrandedItemsSold >= targets.DailyTargetBrandedItems ||
		day.FreeSizeItemsSold >= targets.DailyTargetFreeSizeItems {
		return targets.DailyBonusAmount
	}
	return 0
}

// WeeklyBonus applies the same rule shape to the weekly aggregates.
func WeeklyBonus(totals models.WeeklyTotals, targets models.BonusTargets) float64 {
	if totals.DurationHours < targets.WeeklyTargetDurationHours {
		return 0
	}
	if totals.BrandedItemsSold >= targets.WeeklyTargetBrandedItems ||
		totals.FreeSizeItemsSold >= targets.WeeklyTargetFreeSizeItems {
		return targets.WeeklyBonusAmount
	}
	return 0
}
