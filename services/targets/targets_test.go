package targets

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

type fakeRepo struct {
	stored *models.BonusTargets
	getErr error
	setErr error
}

func (f *fakeRepo) Get() (*models.BonusTargets, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeRepo) Set(targets *models.BonusTargets) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored = targets
	return nil
}

type spyCache struct {
	invalidatedAll int
}

func (c *spyCache) Get(ctx context.Context, selector string, weekStart time.Time) (*models.WeeklyStats, error) {
	return nil, errors.New("cache miss")
}

func (c *spyCache) Set(ctx context.Context, selector string, weekStart time.Time, result *models.WeeklyStats) error {
	return nil
}

func (c *spyCache) InvalidateWeek(ctx context.Context, selector string, weekStart time.Time) error {
	return nil
}

func (c *spyCache) InvalidateAll(ctx context.Context) error {
	c.invalidatedAll++
	return nil
}

func TestGetOrDefaultFallsBackWhenUnset(t *testing.T) {
	svc := &DefaultTargetsService{Repo: &fakeRepo{getErr: targetsRepo.ErrNotFound}}

	got, err := svc.GetOrDefault()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultBonusTargets(), *got)
}

func TestGetOrDefaultPassesThroughStored(t *testing.T) {
	stored := models.DefaultBonusTargets()
	stored.DailyBonusAmount = 750
	svc := &DefaultTargetsService{Repo: &fakeRepo{stored: &stored}}

	got, err := svc.GetOrDefault()
	require.NoError(t, err)
	assert.Equal(t, 750.0, got.DailyBonusAmount)
}

func TestGetOrDefaultPropagatesOtherErrors(t *testing.T) {
	// Only a missing record triggers the fallback; an unreachable store
	// must not quietly degrade to defaults.
	storeErr := errors.New("mongo down")
	svc := &DefaultTargetsService{Repo: &fakeRepo{getErr: storeErr}}

	_, err := svc.GetOrDefault()
	assert.ErrorIs(t, err, storeErr)
}

func TestGetHasNoFallback(t *testing.T) {
	svc := &DefaultTargetsService{Repo: &fakeRepo{getErr: targetsRepo.ErrNotFound}}

	_, err := svc.Get()
	assert.ErrorIs(t, err, targetsRepo.ErrNotFound)
}

func TestSetRejectsNegativeValues(t *testing.T) {
	svc := &DefaultTargetsService{Repo: &fakeRepo{}}

	bad := models.DefaultBonusTargets()
	bad.WeeklyBonusAmount = -1
	_, err := svc.Set(bad)
	assert.ErrorIs(t, err, ErrInvalidTargets)
}

func TestSetAllowsZeroTargets(t *testing.T) {
	// Zero means "no minimum" and is a legal configuration.
	svc := &DefaultTargetsService{Repo: &fakeRepo{}}

	_, err := svc.Set(models.BonusTargets{})
	assert.NoError(t, err)
}

func TestSetInvalidatesAllCachedWeeks(t *testing.T) {
	repo := &fakeRepo{}
	cache := &spyCache{}
	svc := &DefaultTargetsService{Repo: repo, Cache: cache}

	saved, err := svc.Set(models.DefaultBonusTargets())
	require.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Equal(t, 1, cache.invalidatedAll)
	require.NotNil(t, repo.stored)
	assert.Equal(t, 100.0, repo.stored.BasePayPerHour)
}

func TestSetSkipsCacheOnStoreFailure(t *testing.T) {
	cache := &spyCache{}
	svc := &DefaultTargetsService{
		Repo:  &fakeRepo{setErr: errors.New("write failed")},
		Cache: cache,
	}

	_, err := svc.Set(models.DefaultBonusTargets())
	assert.Error(t, err)
	assert.Zero(t, cache.invalidatedAll)
}
