package session

import (
	"context"
	"time"

	sessionlogRepo "sellerpulse/database/repository/sessionlog"
	"sellerpulse/models"
	"sellerpulse/services/stats"
)

// SessionService manages session-log entries.
type SessionService interface {
	// Create records a new session for the given seller.
	Create(ctx context.Context, sellerID string, input models.SessionLog) (*models.SessionLog, error)
	// Update mutates an existing session. Only the owner or an admin may
	// modify a log.
	Update(ctx context.Context, actorID string, actorIsAdmin bool, req models.SessionLogUpdateRequest) (*models.SessionLog, error)
	// ListWeek returns the seller's logs for the pay week containing ref.
	ListWeek(ctx context.Context, sellerID string, ref time.Time) ([]models.SessionLog, error)
	// ListBySeller returns all of a seller's logs, newest first.
	ListBySeller(ctx context.Context, sellerID string) ([]models.SessionLog, error)
}

// DefaultSessionService is the production implementation. It validates at
// write time (malformed time ranges never reach aggregation) and keeps the
// weekly stats cache coherent.
type DefaultSessionService struct {
	Repo  sessionlogRepo.SessionLogRepository
	Cache stats.StatsCache
	Loc   *time.Location
}
