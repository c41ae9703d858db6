package stats

import (
	"context"
	"time"

	"sellerpulse/models"
	"sellerpulse/utils"

	"go.uber.org/zap"
)

// WeeklyStats computes the complete weekly result for the pay week
// containing ref. An empty week yields a valid all-zero result; a missing
// target configuration yields ErrTargetsUnavailable, never a silent
// zero-target substitution.
func (s *DefaultStatsService) WeeklyStats(ctx context.Context, selector string, ref time.Time) (*models.WeeklyStats, error) {
	logger := utils.GetLogger()
	weekStart, weekEnd := WeekRange(ref, s.Loc)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, selector, weekStart); err == nil {
			return cached, nil
		}
	}

	targets, err := s.Targets.Get()
	if err != nil {
		logger.Error("Failed to load bonus targets", zap.Error(err))
		return nil, ErrTargetsUnavailable
	}

	logs, err := s.Logs.ListByWindow(selector, weekStart, weekEnd)
	if err != nil {
		logger.Error("Failed to load session logs",
			zap.String("selector", selector),
			zap.Time("weekStart", weekStart),
			zap.Error(err))
		return nil, err
	}

	result := Compute(selector, logs, *targets, ref, s.Loc)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, selector, weekStart, &result); err != nil {
			logger.Warn("Failed to cache weekly stats", zap.Error(err))
		}
	}
	return &result, nil
}
