package session

import (
	"context"
	"fmt"
	"time"

	"sellerpulse/models"
	"sellerpulse/services/stats"
	"sellerpulse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates and records a new session log for the given seller.
func (s *DefaultSessionService) Create(ctx context.Context, sellerID string, input models.SessionLog) (*models.SessionLog, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	log := models.SessionLog{
		ID:                uuid.NewString(),
		SellerID:          sellerID,
		StartTime:         input.StartTime,
		EndTime:           input.EndTime,
		BrandedItemsSold:  input.BrandedItemsSold,
		FreeSizeItemsSold: input.FreeSizeItemsSold,
	}

	if err := s.Repo.Create(&log); err != nil {
		return nil, fmt.Errorf("failed to create session log: %w", err)
	}

	s.invalidateWeek(ctx, sellerID, log.StartTime)
	return &log, nil
}

// Update mutates an existing session log. Sellers may only touch their own
// logs; admins may touch any.
func (s *DefaultSessionService) Update(ctx context.Context, actorID string, actorIsAdmin bool, req models.SessionLogUpdateRequest) (*models.SessionLog, error) {
	existing, err := s.Repo.GetByID(req.ID)
	if err != nil {
		return nil, err
	}
	if !actorIsAdmin && existing.SellerID != actorID {
		return nil, ErrForbidden
	}

	oldStart := existing.StartTime

	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}
	if req.BrandedItemsSold != nil {
		existing.BrandedItemsSold = *req.BrandedItemsSold
	}
	if req.FreeSizeItemsSold != nil {
		existing.FreeSizeItemsSold = *req.FreeSizeItemsSold
	}

	if err := validate(*existing); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(existing); err != nil {
		return nil, fmt.Errorf("failed to update session log: %w", err)
	}

	// A moved start time can shift the log between pay weeks; drop both.
	s.invalidateWeek(ctx, existing.SellerID, oldStart)
	s.invalidateWeek(ctx, existing.SellerID, existing.StartTime)
	return existing, nil
}

// ListWeek returns the seller's logs for the pay week containing ref.
func (s *DefaultSessionService) ListWeek(ctx context.Context, sellerID string, ref time.Time) ([]models.SessionLog, error) {
	weekStart, weekEnd := stats.WeekRange(ref, s.Loc)
	logs, err := s.Repo.ListByWindow(sellerID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list session logs: %w", err)
	}
	return logs, nil
}

// ListBySeller returns all of a seller's logs, newest first.
func (s *DefaultSessionService) ListBySeller(ctx context.Context, sellerID string) ([]models.SessionLog, error) {
	return s.Repo.ListBySeller(sellerID)
}

// validate applies the write-time rules: no inverted time ranges, no
// negative counts. Zero-duration sessions are allowed.
func validate(log models.SessionLog) error {
	if log.EndTime.Before(log.StartTime) {
		return ErrInvalidTimeRange
	}
	if log.BrandedItemsSold < 0 || log.FreeSizeItemsSold < 0 {
		return ErrNegativeCount
	}
	return nil
}

// invalidateWeek drops the cached stats for the affected seller's week and
// the merged all-sellers view.
func (s *DefaultSessionService) invalidateWeek(ctx context.Context, sellerID string, t time.Time) {
	if s.Cache == nil {
		return
	}
	weekStart, _ := stats.WeekRange(t, s.Loc)
	if err := s.Cache.InvalidateWeek(ctx, sellerID, weekStart); err != nil {
		utils.GetLogger().Warn("Failed to invalidate stats cache", zap.String("sellerID", sellerID), zap.Error(err))
	}
	if err := s.Cache.InvalidateWeek(ctx, stats.SelectorAll, weekStart); err != nil {
		utils.GetLogger().Warn("Failed to invalidate aggregate stats cache", zap.Error(err))
	}
}
