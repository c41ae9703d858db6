package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"sellerpulse/models"
	"sellerpulse/services/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memLogRepo struct {
	byID map[string]*models.SessionLog
}

func newMemLogRepo() *memLogRepo {
	return &memLogRepo{byID: map[string]*models.SessionLog{}}
}

func (r *memLogRepo) GetByID(id string) (*models.SessionLog, error) {
	if log, ok := r.byID[id]; ok {
		cp := *log
		return &cp, nil
	}
	return nil, errors.New("session log not found")
}

func (r *memLogRepo) Create(log *models.SessionLog) error {
	cp := *log
	r.byID[log.ID] = &cp
	return nil
}

func (r *memLogRepo) Update(log *models.SessionLog) error {
	if _, ok := r.byID[log.ID]; !ok {
		return errors.New("session log not found")
	}
	cp := *log
	r.byID[log.ID] = &cp
	return nil
}

func (r *memLogRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *memLogRepo) ListByWindow(sellerID string, start, end time.Time) ([]models.SessionLog, error) {
	var out []models.SessionLog
	for _, log := range r.byID {
		if sellerID != "all" && log.SellerID != sellerID {
			continue
		}
		if log.StartTime.Before(start) || !log.StartTime.Before(end) {
			continue
		}
		out = append(out, *log)
	}
	return out, nil
}

func (r *memLogRepo) ListBySeller(sellerID string) ([]models.SessionLog, error) {
	var out []models.SessionLog
	for _, log := range r.byID {
		if log.SellerID == sellerID {
			out = append(out, *log)
		}
	}
	return out, nil
}

// spyCache records which selector/week pairs were invalidated.
type spyCache struct {
	invalidated []string
}

func (c *spyCache) Get(ctx context.Context, selector string, weekStart time.Time) (*models.WeeklyStats, error) {
	return nil, errors.New("cache miss")
}

func (c *spyCache) Set(ctx context.Context, selector string, weekStart time.Time, result *models.WeeklyStats) error {
	return nil
}

func (c *spyCache) InvalidateWeek(ctx context.Context, selector string, weekStart time.Time) error {
	c.invalidated = append(c.invalidated, selector+":"+weekStart.Format("2006-01-02"))
	return nil
}

func (c *spyCache) InvalidateAll(ctx context.Context) error {
	c.invalidated = append(c.invalidated, "*")
	return nil
}

func newService() (*DefaultSessionService, *memLogRepo, *spyCache) {
	repo := newMemLogRepo()
	cache := &spyCache{}
	return &DefaultSessionService{Repo: repo, Cache: cache, Loc: time.UTC}, repo, cache
}

// Wednesday 2025-08-27, the first day of its pay week.
var wedStart = time.Date(2025, 8, 27, 9, 0, 0, 0, time.UTC)

func TestCreateAssignsIDAndOwner(t *testing.T) {
	svc, repo, cache := newService()

	created, err := svc.Create(context.Background(), "s1", models.SessionLog{
		StartTime:        wedStart,
		EndTime:          wedStart.Add(4 * time.Hour),
		BrandedItemsSold: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "s1", created.SellerID)

	stored, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.BrandedItemsSold)

	// Both the seller's week and the merged view were invalidated.
	assert.Contains(t, cache.invalidated, "s1:2025-08-27")
	assert.Contains(t, cache.invalidated, stats.SelectorAll+":2025-08-27")
}

func TestCreateRejectsInvertedTimeRange(t *testing.T) {
	svc, _, cache := newService()

	_, err := svc.Create(context.Background(), "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart.Add(-time.Hour),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
	assert.Empty(t, cache.invalidated)
}

func TestCreateAllowsZeroDuration(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart,
	})
	assert.NoError(t, err)
}

func TestCreateRejectsNegativeCounts(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), "s1", models.SessionLog{
		StartTime:        wedStart,
		EndTime:          wedStart.Add(time.Hour),
		BrandedItemsSold: -1,
	})
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestUpdateOwnershipCheck(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart.Add(time.Hour),
	})
	require.NoError(t, err)

	branded := 3
	_, err = svc.Update(ctx, "s2", false, models.SessionLogUpdateRequest{
		ID:               created.ID,
		BrandedItemsSold: &branded,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	// An admin may edit any seller's log.
	updated, err := svc.Update(ctx, "admin-1", true, models.SessionLogUpdateRequest{
		ID:               created.ID,
		BrandedItemsSold: &branded,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.BrandedItemsSold)
}

func TestUpdateValidatesMergedResult(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart.Add(time.Hour),
	})
	require.NoError(t, err)

	// Moving just the end time before the existing start is rejected.
	badEnd := wedStart.Add(-time.Hour)
	_, err = svc.Update(ctx, "s1", false, models.SessionLogUpdateRequest{
		ID:      created.ID,
		EndTime: &badEnd,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestUpdateInvalidatesBothWeeksOnMove(t *testing.T) {
	svc, _, cache := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart.Add(time.Hour),
	})
	require.NoError(t, err)
	cache.invalidated = nil

	// Move the session into the following pay week.
	newStart := wedStart.AddDate(0, 0, 7)
	newEnd := newStart.Add(time.Hour)
	_, err = svc.Update(ctx, "s1", false, models.SessionLogUpdateRequest{
		ID:        created.ID,
		StartTime: &newStart,
		EndTime:   &newEnd,
	})
	require.NoError(t, err)

	assert.Contains(t, cache.invalidated, "s1:2025-08-27")
	assert.Contains(t, cache.invalidated, "s1:2025-09-03")
}

func TestListWeekBoundsQuery(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	inWeek, err := svc.Create(ctx, "s1", models.SessionLog{
		StartTime: wedStart,
		EndTime:   wedStart.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, "s1", models.SessionLog{
		StartTime: wedStart.AddDate(0, 0, 7),
		EndTime:   wedStart.AddDate(0, 0, 7).Add(time.Hour),
	})
	require.NoError(t, err)

	logs, err := svc.ListWeek(ctx, "s1", wedStart.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, inWeek.ID, logs[0].ID)
}
