package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bg:ratelimit:" // bg:ratelimit:{client}:{window}

// RedisLimiter is a fixed-window counter shared by every API replica.
type RedisLimiter struct {
	client *redis.Client
	window time.Duration
	limit  int
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, p Policy) *RedisLimiter {
	window, limit := p.Window()
	return &RedisLimiter{
		client: client,
		window: window,
		limit:  limit,
		now:    time.Now,
	}
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	slot := r.now().UnixMilli() / r.window.Milliseconds()
	k := fmt.Sprintf("%s%s:%d", keyPrefix, key, slot)

	pipe := r.client.Pipeline()
	incr := pipe.Incr(ctx, k)
	pipe.PExpire(ctx, k, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= int64(r.limit), nil
}
