package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sellerpulse/models"
	statsSvc "sellerpulse/services/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsService struct {
	result       *models.WeeklyStats
	err          error
	lastSelector string
	lastRef      time.Time
}

func (s *stubStatsService) WeeklyStats(ctx context.Context, selector string, ref time.Time) (*models.WeeklyStats, error) {
	s.lastSelector = selector
	s.lastRef = ref
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func statsRouter(svc statsSvc.StatsService, sellerID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("sellerID", sellerID)
		c.Set("role", role)
	})
	h := NewStatsHandler(svc)
	r.GET("/api/stats/weekly", h.WeeklyStatsHandler)
	return r
}

func emptyWeek() *models.WeeklyStats {
	return &models.WeeklyStats{
		DailyStats:    make([]models.DailyStat, 7),
		WeekDateRange: "Aug 27 - Sep 2, 2025",
	}
}

func TestWeeklyStatsHandlerOwnStats(t *testing.T) {
	svc := &stubStatsService{result: emptyWeek()}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", svc.lastSelector)
	assert.Contains(t, w.Body.String(), "Aug 27 - Sep 2, 2025")
}

func TestWeeklyStatsHandlerForbidsForeignSeller(t *testing.T) {
	svc := &stubStatsService{result: emptyWeek()}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly?sellerId=s2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, svc.lastSelector)
}

func TestWeeklyStatsHandlerAdminViews(t *testing.T) {
	svc := &stubStatsService{result: emptyWeek()}
	r := statsRouter(svc, "admin-1", models.RoleAdmin)

	for _, selector := range []string{"s2", statsSvc.SelectorAll} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly?sellerId="+selector, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, selector, svc.lastSelector)
	}
}

func TestWeeklyStatsHandlerDateParam(t *testing.T) {
	svc := &stubStatsService{result: emptyWeek()}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly?date=2025-08-30", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2025, svc.lastRef.Year())
	assert.Equal(t, time.August, svc.lastRef.Month())
	assert.Equal(t, 30, svc.lastRef.Day())
}

func TestWeeklyStatsHandlerBadDate(t *testing.T) {
	svc := &stubStatsService{result: emptyWeek()}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly?date=yesterday", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWeeklyStatsHandlerTargetsUnavailable(t *testing.T) {
	svc := &stubStatsService{err: statsSvc.ErrTargetsUnavailable}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestWeeklyStatsHandlerInternalError(t *testing.T) {
	svc := &stubStatsService{err: errors.New("mongo down")}
	r := statsRouter(svc, "s1", models.RoleSeller)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/weekly", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
