package ratelimit

import (
	"context"
	"time"

	"github.com/RajatShinde3/callmate-ai-backend/pkg/utils"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// RedisLimiter shares window counters through Redis so multiple processes
// (or restarts within a window) see one count per client.
type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

var _ Limiter = (*RedisLimiter)(nil)

func NewRedisLimiter(rdb *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, max: max, window: window}
}

func (l *RedisLimiter) Backend() string { return "redis" }

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := utils.IncrFixedWindow(ctx, l.rdb, keyPrefix+key, l.window)
	if err != nil {
		return false, err
	}
	return count <= int64(l.max), nil
}
