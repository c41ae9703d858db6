package handlers

import (
	"errors"
	"net/http"
	"time"

	"sellerpulse/models"
	statsSvc "sellerpulse/services/stats"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler exposes the weekly statistics endpoint.
type StatsHandler struct {
	Service statsSvc.StatsService
}

func NewStatsHandler(svc statsSvc.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

// WeeklyStatsHandler returns the complete weekly result for the pay week
// containing the requested date. Sellers get their own stats; admins may
// request any seller or the merged "all" view. A week with no sessions is a
// valid zero-valued result, not an error.
func (h *StatsHandler) WeeklyStatsHandler(c *gin.Context) {
	actorID := c.GetString("sellerID")
	isAdmin := c.GetString("role") == models.RoleAdmin

	selector := c.DefaultQuery("sellerId", actorID)
	if selector != actorID && !isAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Cannot view another seller's stats"})
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

	result, err := h.Service.WeeklyStats(c.Request.Context(), selector, ref)
	if err != nil {
		if errors.Is(err, statsSvc.ErrTargetsUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Bonus targets are not available"})
			return
		}
		getLogger(c).Error("Failed to compute weekly stats",
			zap.String("selector", selector),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute weekly stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": result})
}
