package secrets

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched secret is served from memory.
const DefaultTTL = 5 * time.Minute

// fetchTimeout bounds a shared fetch, which outlives the caller that started it.
const fetchTimeout = 10 * time.Second

// Cache holds the API key fetched from a Source until its expiry.
// Failures are never cached.
type Cache struct {
	source Source
	logger *zap.Logger
	ttl    time.Duration
	now    func() time.Time

	mu     sync.RWMutex
	value  string
	expiry time.Time

	sf singleflight.Group
}

// CacheOption customizes a Cache.
type CacheOption func(*Cache)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache creates an empty cache over source.
func NewCache(source Source, logger *zap.Logger, opts ...CacheOption) *Cache {
	c := &Cache{
		source: source,
		logger: logger,
		ttl:    DefaultTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the API key, fetching it when the cache is empty or expired.
// It returns false when the key cannot be obtained.
func (c *Cache) Get(ctx context.Context) (string, bool) {
	if v, ok := c.cached(); ok {
		return v, true
	}

	// Concurrent misses share one fetch
	v, err, _ := c.sf.Do("api-key", func() (interface{}, error) {
		if v, ok := c.cached(); ok {
			return v, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		payload, err := c.source.Fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		key, err := ParseAPIKey(payload)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.value = key
		c.expiry = c.now().Add(c.ttl)
		c.mu.Unlock()

		c.logger.Info("API key retrieved and cached")
		return key, nil
	})
	if err != nil {
		c.logger.Error("Error fetching API key", zap.Error(err))
		return "", false
	}

	return v.(string), true
}

// Reset drops the cached value.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.value = ""
	c.expiry = time.Time{}
	c.mu.Unlock()
}

func (c *Cache) cached() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value != "" && c.now().Before(c.expiry) {
		return c.value, true
	}
	return "", false
}
