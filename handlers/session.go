package handlers

import (
	"errors"
	"net/http"
	"time"

	"sellerpulse/models"
	sessionSvc "sellerpulse/services/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler exposes session-log endpoints.
type SessionHandler struct {
	Service sessionSvc.SessionService
}

func NewSessionHandler(svc sessionSvc.SessionService) *SessionHandler {
	return &SessionHandler{Service: svc}
}

// CreateSessionHandler records a new work session for the caller. Admins
// may log on behalf of another seller by setting sellerId in the body.
func (h *SessionHandler) CreateSessionHandler(c *gin.Context) {
	actorID := c.GetString("sellerID")

	var input models.SessionLog
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ownerID := actorID
	if input.SellerID != "" && input.SellerID != actorID {
		if c.GetString("role") != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot log sessions for another seller"})
			return
		}
		ownerID = input.SellerID
	}

	created, err := h.Service.Create(c.Request.Context(), ownerID, input)
	if err != nil {
		if errors.Is(err, sessionSvc.ErrInvalidTimeRange) || errors.Is(err, sessionSvc.ErrNegativeCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to create session log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session log"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateSessionHandler mutates an existing session log.
func (h *SessionHandler) UpdateSessionHandler(c *gin.Context) {
	actorID := c.GetString("sellerID")
	isAdmin := c.GetString("role") == models.RoleAdmin

	var req models.SessionLogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.Service.Update(c.Request.Context(), actorID, isAdmin, req)
	if err != nil {
		switch {
		case errors.Is(err, sessionSvc.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, sessionSvc.ErrInvalidTimeRange), errors.Is(err, sessionSvc.ErrNegativeCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			getLogger(c).Error("Failed to update session log", zap.String("id", req.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session log"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListSessionsHandler returns session logs for one pay week. Sellers see
// their own; admins may pass sellerId=<id|all>.
func (h *SessionHandler) ListSessionsHandler(c *gin.Context) {
	actorID := c.GetString("sellerID")
	isAdmin := c.GetString("role") == models.RoleAdmin

	sellerID := c.DefaultQuery("sellerId", actorID)
	if sellerID != actorID && !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot view another seller's sessions"})
		return
	}

	ref := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := parseDateParam(dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date parameter"})
			return
		}
		ref = parsed
	}

	logs, err := h.Service.ListWeek(c.Request.Context(), sellerID, ref)
	if err != nil {
		getLogger(c).Error("Failed to list session logs", zap.String("sellerID", sellerID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve session logs"})
		return
	}
	if logs == nil {
		logs = []models.SessionLog{}
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// parseDateParam accepts RFC3339 or a bare calendar date.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
