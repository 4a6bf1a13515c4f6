package throttle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "throttle:login:"

// RedisClient is the subset of *redis.Client the limiter needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisLimiter counts failures in a fixed window shared by every instance. The window is
// armed with EXPIRE NX, which needs Redis 7.0 or newer.
type RedisLimiter struct {
	client      RedisClient
	maxAttempts int64
	window      time.Duration
}

var _ Limiter = (*RedisLimiter)(nil)

func NewRedisLimiter(client RedisClient, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func (r *RedisLimiter) key(clientKey string) string {
	return keyPrefix + clientKey
}

func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := r.client.Get(ctx, r.key(key)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read login failures: %w", err)
	}

	return count < r.maxAttempts, nil
}

func (r *RedisLimiter) Fail(ctx context.Context, key string) error {
	k := r.key(key)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}

	// NX leaves a running window alone and re-arms a key whose earlier expire was lost
	if err := r.client.ExpireNX(ctx, k, r.window).Err(); err != nil {
		return fmt.Errorf("failed to set login failure window (count %d): %w", count, err)
	}

	return nil
}

func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to reset login failures: %w", err)
	}
	return nil
}
