package throttle

import (
	"context"
	"fmt"
	"photo-portfolio/internal/config"
)

//go:generate mockgen -source=throttle.go -destination=../mocks/throttle.go -package=mocks

// Limiter tracks failed login attempts per client key.
type Limiter interface {
	// Allow reports whether key may attempt another login.
	Allow(ctx context.Context, key string) (bool, error)
	// Fail records a failed attempt for key.
	Fail(ctx context.Context, key string) error
	// Reset forgets all failures for key.
	Reset(ctx context.Context, key string) error
}

// NewLimiter returns the limiter selected by cfg.Throttle.Type. client is only used by the redis limiter.
func NewLimiter(cfg *config.Config, client RedisClient) (Limiter, error) {
	switch cfg.Throttle.Type {
	case config.ThrottleTypeMemory:
		return NewMemoryLimiter(cfg.Throttle.MaxAttempts, cfg.Throttle.Window), nil
	case config.ThrottleTypeRedis:
		if client == nil {
			return nil, fmt.Errorf("redis client is required for the redis login throttle")
		}
		return NewRedisLimiter(client, cfg.Throttle.MaxAttempts, cfg.Throttle.Window), nil
	default:
		return nil, fmt.Errorf("unknown throttle type: %s", cfg.Throttle.Type)
	}
}
