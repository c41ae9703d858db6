package models

import "time"

// BonusTargets is the single global bonus configuration record. A target of
// 0 means "no minimum" and that sub-condition always passes.
type BonusTargets struct {
	BasePayPerHour            float64   `bson:"basePayPerHour" json:"basePayPerHour"`
	DailyTargetBrandedItems   int       `bson:"dailyTargetBrandedItems" json:"dailyTargetBrandedItems"`
	DailyTargetFreeSizeItems  int       `bson:"dailyTargetFreeSizeItems" json:"dailyTargetFreeSizeItems"`
	DailyTargetDurationHours  float64   `bson:"dailyTargetDurationHours" json:"dailyTargetDurationHours"`
	DailyBonusAmount          float64   `bson:"dailyBonusAmount" json:"dailyBonusAmount"`
	WeeklyTargetBrandedItems  int       `bson:"weeklyTargetBrandedItems" json:"weeklyTargetBrandedItems"`
	WeeklyTargetFreeSizeItems int       `bson:"weeklyTargetFreeSizeItems" json:"weeklyTargetFreeSizeItems"`
	WeeklyTargetDurationHours float64   `bson:"weeklyTargetDurationHours" json:"weeklyTargetDurationHours"`
	WeeklyBonusAmount         float64   `bson:"weeklyBonusAmount" json:"weeklyBonusAmount"`
	UpdatedAt                 time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultBonusTargets returns the documented built-in configuration used
// only when a caller explicitly asks for a fallback. Stats computation never
// substitutes these silently.
func DefaultBonusTargets() BonusTargets {
	return BonusTargets{
		BasePayPerHour:            100,
		DailyTargetBrandedItems:   5,
		DailyTargetFreeSizeItems:  8,
		DailyTargetDurationHours:  4,
		DailyBonusAmount:          500,
		WeeklyTargetBrandedItems:  25,
		WeeklyTargetFreeSizeItems: 40,
		WeeklyTargetDurationHours: 20,
		WeeklyBonusAmount:         2500,
	}
}
