package stats

import (
	"testing"

	"sellerpulse/models"

	"github.com/stretchr/testify/assert"
)

func TestSumWeek(t *testing.T) {
	days := []models.DailyStat{
		{BrandedItemsSold: 5, FreeSizeItemsSold: 2, DurationHours: 4},
		{BrandedItemsSold: 0, FreeSizeItemsSold: 9, DurationHours: 3.5},
		{},
		{BrandedItemsSold: 7, DurationHours: 6},
		{}, {}, {},
	}

	totals := SumWeek(days)
	assert.Equal(t, 12, totals.BrandedItemsSold)
	assert.Equal(t, 11, totals.FreeSizeItemsSold)
	assert.Equal(t, 23, totals.TotalItems)
	assert.InDelta(t, 13.5, totals.DurationHours, 1e-9)
}

func TestComposePayout(t *testing.T) {
	days := []models.DailyStat{
		{BasePay: 400, Bonus: 500},
		{BasePay: 390, Bonus: 0},
		{BasePay: 0, Bonus: 0},
		{BasePay: 650, Bonus: 500},
		{}, {}, {},
	}

	payout := ComposePayout(days, 2500)
	assert.InDelta(t, 1440, payout.BasePay, 1e-9)
	assert.InDelta(t, 1000, payout.DailyBonuses, 1e-9)
	assert.InDelta(t, 2500, payout.WeeklyBonus, 1e-9)
	assert.InDelta(t, 3500, payout.Bonuses, 1e-9)
	assert.InDelta(t, 4940, payout.Total, 1e-9)
}

func TestComposePayoutIdentity(t *testing.T) {
	// total == basePay + dailyBonuses + weeklyBonus for arbitrary inputs.
	cases := []struct {
		days        []models.DailyStat
		weeklyBonus float64
	}{
		{days: make([]models.DailyStat, 7), weeklyBonus: 0},
		{days: []models.DailyStat{{BasePay: 123.45, Bonus: 500}}, weeklyBonus: 2500},
		{days: []models.DailyStat{{BasePay: 0.1, Bonus: 0.2}, {BasePay: 0.3}}, weeklyBonus: 0.4},
	}
	for _, c := range cases {
		p := ComposePayout(c.days, c.weeklyBonus)
		assert.InDelta(t, p.BasePay+p.DailyBonuses+p.WeeklyBonus, p.Total, 1e-9)
		assert.InDelta(t, p.DailyBonuses+p.WeeklyBonus, p.Bonuses, 1e-9)
	}
}
