package models

import "time"

// DailyStat is one pay-week day's aggregated performance. Values are
// full-precision; rounding to display currency is a presentation concern.
type DailyStat struct {
	Date              time.Time `json:"date"`
	DayName           string    `json:"dayName"`
	BrandedItemsSold  int       `json:"brandedItemsSold"`
	FreeSizeItemsSold int       `json:"freeSizeItemsSold"`
	TotalItems        int       `json:"totalItems"`
	DurationHours     float64   `json:"durationHours"`
	BasePay           float64   `json:"basePay"`
	Bonus             float64   `json:"bonus"`
}

// WeeklyTotals sums the seven daily stats plus the weekly bonus award.
type WeeklyTotals struct {
	BrandedItemsSold  int     `json:"brandedItemsSold"`
	FreeSizeItemsSold int     `json:"freeSizeItemsSold"`
	TotalItems        int     `json:"totalItems"`
	DurationHours     float64 `json:"durationHours"`
	Bonus             float64 `json:"bonus"`
}

// Payout is the projected pay breakdown for one pay week.
type Payout struct {
	BasePay      float64 `json:"basePay"`
	DailyBonuses float64 `json:"dailyBonuses"`
	WeeklyBonus  float64 `json:"weeklyBonus"`
	Bonuses      float64 `json:"bonuses"`
	Total        float64 `json:"total"`
}

// StatsWarmPayload is the task payload for the cache-warming worker.
type StatsWarmPayload struct {
	Selector string `json:"selector"`
}

// WeeklyStats is the complete weekly result consumed by dashboards.
// WeekStart/WeekEnd delimit the exclusive query window; WeekDateRange is the
// human-readable label built from the inclusive display end.
type WeeklyStats struct {
	DailyStats    []DailyStat  `json:"dailyStats"`
	WeeklyTotals  WeeklyTotals `json:"weeklyTotals"`
	Payout        Payout       `json:"payout"`
	WeekDateRange string       `json:"weekDateRange"`
	WeekStart     time.Time    `json:"weekStart"`
	WeekEnd       time.Time    `json:"weekEnd"`
}
