package handlers

import (
	"errors"
	"net/http"

	"sellerpulse/models"
	targetsSvc "sellerpulse/services/targets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TargetsHandler exposes the bonus-target configuration endpoints.
type TargetsHandler struct {
	Service targetsSvc.TargetsService
}

func NewTargetsHandler(svc targetsSvc.TargetsService) *TargetsHandler {
	return &TargetsHandler{Service: svc}
}

// GetTargetsHandler returns the current configuration. Dashboards need a
// usable record even before an admin has saved one, so this endpoint asks
// for the explicit default fallback.
func (h *TargetsHandler) GetTargetsHandler(c *gin.Context) {
	targets, err := h.Service.GetOrDefault()
	if err != nil {
		getLogger(c).Error("Failed to load bonus targets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bonus targets"})
		return
	}
	c.JSON(http.StatusOK, targets)
}

// UpdateTargetsHandler replaces the configuration wholesale (admin only).
func (h *TargetsHandler) UpdateTargetsHandler(c *gin.Context) {
	var req models.BonusTargets
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.Service.Set(req)
	if err != nil {
		if errors.Is(err, targetsSvc.ErrInvalidTargets) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Failed to save bonus targets", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bonus targets"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
