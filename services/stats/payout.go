package stats

import "sellerpulse/models"

// SumWeek folds the seven daily stats into weekly totals. The weekly bonus
// is evaluated separately and filled in by the caller.
func SumWeek(days []models.DailyStat) models.WeeklyTotals {
	var totals models.WeeklyTotals
	for _, d := range days {
		totals.BrandedItemsSold += d.BrandedItemsSold
		totals.FreeSizeItemsSold += d.FreeSizeItemsSold
		totals.DurationHours += d.DurationHours
	}
	totals.TotalItems = totals.BrandedItemsSold + totals.FreeSizeItemsSold
	return totals
}

// ComposePayout assembles the projected payout from the per-day stats and
// the already-evaluated weekly bonus. Base pay is the sum of the daily base
// pay figures, which by construction equals total duration times the hourly
// rate. Values stay full precision; rounding belongs to the presentation
// layer.
func ComposePayout(days []models.DailyStat, weeklyBonus float64) models.Payout {
	var payout models.Payout
	for _, d := range days {
		payout.BasePay += d.BasePay
		payout.DailyBonuses += d.Bonus
	}
	payout.WeeklyBonus = weeklyBonus
	payout.Bonuses = payout.DailyBonuses + payout.WeeklyBonus
	payout.Total = payout.BasePay + payout.Bonuses
	return payout
}
