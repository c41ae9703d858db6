package sessionlogRepo

import (
	"time"

	"sellerpulse/models"
)

// SessionLogRepository defines methods for session-log data access.
type SessionLogRepository interface {
	// GetByID retrieves a session log by its unique ID.
	GetByID(id string) (*models.SessionLog, error)
	// Create inserts a new session log.
	Create(log *models.SessionLog) error
	// Update replaces the mutable fields of an existing session log.
	Update(log *models.SessionLog) error
	// Delete removes a session log by its ID.
	Delete(id string) error
	// ListByWindow returns logs whose start time falls in [start, end).
	// Pass SellerAll as sellerID to include every seller.
	ListByWindow(sellerID string, start, end time.Time) ([]models.SessionLog, error)
	// ListBySeller returns all logs for one seller, newest first.
	ListBySeller(sellerID string) ([]models.SessionLog, error)
}

// SellerAll requests logs across all sellers in ListByWindow.
const SellerAll = "all"
