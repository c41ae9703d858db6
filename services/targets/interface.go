package targets

import (
	targetsRepo "sellerpulse/database/repository/targets"
	"sellerpulse/models"
	"sellerpulse/services/stats"
)

// TargetsService manages the global bonus-target configuration.
type TargetsService interface {
	// Get returns the stored configuration, or an error when unset.
	Get() (*models.BonusTargets, error)
	// GetOrDefault returns the stored configuration, explicitly falling
	// back to the built-in default record when none has been written.
	GetOrDefault() (*models.BonusTargets, error)
	// Set replaces the configuration wholesale.
	Set(targets models.BonusTargets) (*models.BonusTargets, error)
}

// DefaultTargetsService is the production implementation.
type DefaultTargetsService struct {
	Repo  targetsRepo.TargetsRepository
	Cache stats.StatsCache
}
