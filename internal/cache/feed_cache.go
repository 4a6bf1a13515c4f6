package cache

import (
	"sync"
	"time"
)

// FeedCache holds the most recently rendered feed document until it expires or is invalidated.
//
// Every Invalidate bumps a generation counter. Get reports the generation it observed and Set
// only stores a document built for the current generation, so a render that raced a write is
// never cached.
type FeedCache struct {
	ttl   time.Duration
	now   func() time.Time
	mutex sync.RWMutex

	body       string
	expires    time.Time
	valid      bool
	generation uint64
}

func NewFeedCache(ttl time.Duration) *FeedCache {
	return &FeedCache{
		ttl: ttl,
		now: time.Now,
	}
}

// Get returns the cached document when one is present and not expired, along with the
// generation a caller must hand back to Set after rendering a replacement.
func (c *FeedCache) Get() (string, uint64, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if !c.valid || !c.now().Before(c.expires) {
		return "", c.generation, false
	}

	return c.body, c.generation, true
}

// Set stores body if no invalidation happened since generation was read. It reports whether
// the document was stored.
func (c *FeedCache) Set(body string, generation uint64) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if generation != c.generation {
		return false
	}

	c.body = body
	c.expires = c.now().Add(c.ttl)
	c.valid = true
	return true
}

// Invalidate drops the cached document. Called after any write to the photo store.
func (c *FeedCache) Invalidate() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.body = ""
	c.valid = false
	c.generation++
}
