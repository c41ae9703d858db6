package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	targetsRepo "sellerpulse/database/repository/targets"
	"sellerpulse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	logs  []models.SessionLog
	err   error
	calls int
}

func (f *fakeLogRepo) GetByID(id string) (*models.SessionLog, error) { return nil, errors.New("not implemented") }
func (f *fakeLogRepo) Create(log *models.SessionLog) error          { return errors.New("not implemented") }
func (f *fakeLogRepo) Update(log *models.SessionLog) error          { return errors.New("not implemented") }
func (f *fakeLogRepo) Delete(id string) error                       { return errors.New("not implemented") }
func (f *fakeLogRepo) ListBySeller(sellerID string) ([]models.SessionLog, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeLogRepo) ListByWindow(sellerID string, start, end time.Time) ([]models.SessionLog, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.logs, nil
}

type fakeTargetsRepo struct {
	targets *models.BonusTargets
	err     error
}

func (f *fakeTargetsRepo) Get() (*models.BonusTargets, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.targets, nil
}

func (f *fakeTargetsRepo) Set(targets *models.BonusTargets) error { return nil }

type memStatsCache struct {
	entries map[string]*models.WeeklyStats
}

func newMemStatsCache() *memStatsCache {
	return &memStatsCache{entries: map[string]*models.WeeklyStats{}}
}

func (c *memStatsCache) Get(ctx context.Context, selector string, weekStart time.Time) (*models.WeeklyStats, error) {
	if v, ok := c.entries[statsKey(selector, weekStart)]; ok {
		return v, nil
	}
	return nil, errors.New("cache miss")
}

func (c *memStatsCache) Set(ctx context.Context, selector string, weekStart time.Time, result *models.WeeklyStats) error {
	c.entries[statsKey(selector, weekStart)] = result
	return nil
}

func (c *memStatsCache) InvalidateWeek(ctx context.Context, selector string, weekStart time.Time) error {
	delete(c.entries, statsKey(selector, weekStart))
	return nil
}

func (c *memStatsCache) InvalidateAll(ctx context.Context) error {
	c.entries = map[string]*models.WeeklyStats{}
	return nil
}

func defaultTargetsPtr() *models.BonusTargets {
	t := models.DefaultBonusTargets()
	return &t
}

func TestWeeklyStatsTargetsUnavailable(t *testing.T) {
	svc := &DefaultStatsService{
		Logs:    &fakeLogRepo{},
		Targets: &fakeTargetsRepo{err: targetsRepo.ErrNotFound},
		Loc:     time.UTC,
	}

	_, err := svc.WeeklyStats(context.Background(), "s1", testWeekStart)
	assert.ErrorIs(t, err, ErrTargetsUnavailable)
}

func TestWeeklyStatsEmptyWeek(t *testing.T) {
	svc := &DefaultStatsService{
		Logs:    &fakeLogRepo{},
		Targets: &fakeTargetsRepo{targets: defaultTargetsPtr()},
		Loc:     time.UTC,
	}

	result, err := svc.WeeklyStats(context.Background(), "s1", testWeekStart)
	require.NoError(t, err)
	require.Len(t, result.DailyStats, 7)
	assert.Zero(t, result.Payout.Total)
}

func TestWeeklyStatsPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("mongo down")
	svc := &DefaultStatsService{
		Logs:    &fakeLogRepo{err: repoErr},
		Targets: &fakeTargetsRepo{targets: defaultTargetsPtr()},
		Loc:     time.UTC,
	}

	_, err := svc.WeeklyStats(context.Background(), "s1", testWeekStart)
	assert.ErrorIs(t, err, repoErr)
}

func TestWeeklyStatsCachesResult(t *testing.T) {
	repo := &fakeLogRepo{logs: []models.SessionLog{
		mkLog("s1", testWeekStart.Add(9*time.Hour), 4, 5, 0),
	}}
	svc := &DefaultStatsService{
		Logs:    repo,
		Targets: &fakeTargetsRepo{targets: defaultTargetsPtr()},
		Cache:   newMemStatsCache(),
		Loc:     time.UTC,
	}

	first, err := svc.WeeklyStats(context.Background(), "s1", testWeekStart)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)

	// Second call is served from the cache without touching the store.
	second, err := svc.WeeklyStats(context.Background(), "s1", testWeekStart)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first.Payout, second.Payout)
}

func TestWeeklyStatsCacheKeyedByWeek(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := &DefaultStatsService{
		Logs:    repo,
		Targets: &fakeTargetsRepo{targets: defaultTargetsPtr()},
		Cache:   newMemStatsCache(),
		Loc:     time.UTC,
	}

	ctx := context.Background()
	_, err := svc.WeeklyStats(ctx, "s1", testWeekStart)
	require.NoError(t, err)

	// A different week misses the cache and queries again.
	_, err = svc.WeeklyStats(ctx, "s1", testWeekStart.AddDate(0, 0, 7))
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
