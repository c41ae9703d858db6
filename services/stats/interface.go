package stats

import (
	"context"
	"time"

	sessionlogRepo "sellerpulse/database/repository/sessionlog"
	targetsRepo "sellerpulse/database/repository/targets"

	"sellerpulse/models"
)

// StatsService produces weekly statistics for dashboards.
type StatsService interface {
	// WeeklyStats computes the full weekly result for one seller (or
	// SelectorAll) for the pay week containing ref.
	WeeklyStats(ctx context.Context, selector string, ref time.Time) (*models.WeeklyStats, error)
}

// DefaultStatsService is the production implementation: it fetches logs and
// targets from their stores, consults the Redis cache, and delegates the
// actual computation to the pure Compute pipeline.
type DefaultStatsService struct {
	Logs    sessionlogRepo.SessionLogRepository
	Targets targetsRepo.TargetsRepository
	Cache   StatsCache
	Loc     *time.Location
}
