package targetsRepo

import "sellerpulse/models"

// TargetsRepository defines access to the single global bonus-target
// configuration record.
type TargetsRepository interface {
	// Get retrieves the configuration. Returns ErrNotFound when the record
	// has never been written; callers decide whether to fall back.
	Get() (*models.BonusTargets, error)
	// Set replaces the configuration wholesale.
	Set(targets *models.BonusTargets) error
}
