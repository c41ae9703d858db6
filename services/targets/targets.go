package targets

import (
	"context"
	"errors"
	"fmt"

	targetsRepo "sellerpulse/database/repository/targets"
	"sellerpulse/models"
	"sellerpulse/utils"

	"go.uber.org/zap"
)

// ErrInvalidTargets rejects configurations with negative values. A zero
// target is legal and means "no minimum".
var ErrInvalidTargets = errors.New("targets and amounts must be non-negative")

// Get returns the stored configuration without any fallback.
func (s *DefaultTargetsService) Get() (*models.BonusTargets, error) {
	return s.Repo.Get()
}

// GetOrDefault returns the stored configuration, or the documented default
// record when none has been written yet. The fallback is explicit here so
// stats computation can still insist on a real configuration.
func (s *DefaultTargetsService) GetOrDefault() (*models.BonusTargets, error) {
	stored, err := s.Repo.Get()
	if err == nil {
		return stored, nil
	}
	if errors.Is(err, targetsRepo.ErrNotFound) {
		defaults := models.DefaultBonusTargets()
		return &defaults, nil
	}
	return nil, err
}

// Set replaces the configuration wholesale and drops every cached weekly
// result, since a target change affects all past and future computations.
func (s *DefaultTargetsService) Set(targets models.BonusTargets) (*models.BonusTargets, error) {
	if err := validate(targets); err != nil {
		return nil, err
	}

	if err := s.Repo.Set(&targets); err != nil {
		return nil, fmt.Errorf("failed to save bonus targets: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.InvalidateAll(context.Background()); err != nil {
			utils.GetLogger().Warn("Failed to invalidate stats cache after target change", zap.Error(err))
		}
	}
	return &targets, nil
}

func validate(t models.BonusTargets) error {
	if t.BasePayPerHour < 0 ||
		t.DailyTargetBrandedItems < 0 || t.DailyTargetFreeSizeItems < 0 ||
		t.DailyTargetDurationHours < 0 || t.DailyBonusAmount < 0 ||
		t.WeeklyTargetBrandedItems < 0 || t.WeeklyTargetFreeSizeItems < 0 ||
		t.WeeklyTargetDurationHours < 0 || t.WeeklyBonusAmount < 0 {
		return ErrInvalidTargets
	}
	return nil
}
