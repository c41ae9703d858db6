package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sellerpulse/models"

	"github.com/go-redis/redis/v8"
)

// StatsCache stores computed weekly results keyed by seller selector and
// week start so dashboards don't recompute on every poll. Entries are
// invalidated whenever a session log or the target configuration changes.
type StatsCache interface {
	Get(ctx context.Context, selector string, weekStart time.Time) (*models.WeeklyStats, error)
	Set(ctx context.Context, selector string, weekStart time.Time, result *models.WeeklyStats) error
	InvalidateWeek(ctx context.Context, selector string, weekStart time.Time) error
	InvalidateAll(ctx context.Context) error
}

const (
	statsCachePrefix = "stats:weekly:"
	statsCacheTTL    = 10 * time.Minute
)

// RedisStatsCache implements StatsCache on the generic cache client.
type RedisStatsCache struct {
	client *redis.Client
}

func NewRedisStatsCache(client *redis.Client) StatsCache {
	return &RedisStatsCache{client: client}
}

func statsKey(selector string, weekStart time.Time) string {
	return fmt.Sprintf("%s%s:%s", statsCachePrefix, selector, weekStart.Format("2006-01-02"))
}

func (c *RedisStatsCache) Get(ctx context.Context, selector string, weekStart time.Time) (*models.WeeklyStats, error) {
	val, err := c.client.Get(ctx, statsKey(selector, weekStart)).Result()
	if err != nil {
		return nil, err
	}
	var result models.WeeklyStats
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *RedisStatsCache) Set(ctx context.Context, selector string, weekStart time.Time, result *models.WeeklyStats) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsKey(selector, weekStart), data, statsCacheTTL).Err()
}

func (c *RedisStatsCache) InvalidateWeek(ctx context.Context, selector string, weekStart time.Time) error {
	return c.client.Del(ctx, statsKey(selector, weekStart)).Err()
}

func (c *RedisStatsCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, statsCachePrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
