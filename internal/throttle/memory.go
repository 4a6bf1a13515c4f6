package throttle

import (
	"context"
	"photo-portfolio/internal/config"
	"photo-portfolio/internal/metrics"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryLimiter keeps a token bucket per key. Each failure spends a token and the bucket refills
// to maxAttempts over one window.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type bucket struct {
	limiter  *rate.Limiter
	lastFail time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter(maxAttempts int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Every(window / time.Duration(maxAttempts)),
		burst:   maxAttempts,
		window:  window,
		now:     time.Now,
	}
}

func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buckets[key]
	if !ok {
		return true, nil
	}

	return b.limiter.TokensAt(m.now()) >= 1, nil
}

func (m *MemoryLimiter) Fail(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sweep(now)

	b, ok := m.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.buckets[key] = b
	}

	b.limiter.AllowN(now, 1)
	b.lastFail = now

	metrics.ThrottleTrackedKeys.WithLabelValues(config.ThrottleTypeMemory).Set(float64(len(m.buckets)))
	return nil
}

func (m *MemoryLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.buckets, key)

	metrics.ThrottleTrackedKeys.WithLabelValues(config.ThrottleTypeMemory).Set(float64(len(m.buckets)))
	return nil
}

// sweep drops buckets that have fully refilled. Caller must hold mu.
func (m *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < m.window {
		return
	}
	m.lastSweep = now

	for key, b := range m.buckets {
		if now.Sub(b.lastFail) >= m.window {
			delete(m.buckets, key)
		}
	}
}

func (m *MemoryLimiter) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}
