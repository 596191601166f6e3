package secrets_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"todo-sync/core/secrets"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// countingSource returns payload (or err) and counts fetches.
type countingSource struct {
	mu      sync.Mutex
	payload string
	err     error
	delay   time.Duration
	fetches atomic.Int32
}

func (s *countingSource) Fetch(context.Context) (string, error) {
	s.fetches.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.payload, s.err
}

func (s *countingSource) set(payload string, err error) {
	s.mu.Lock()
	s.payload, s.err = payload, err
	s.mu.Unlock()
}

// manualClock is a clock tests move by hand.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestCache_ServesWithinTTL(t *testing.T) {
	src := &countingSource{payload: `{"apiKey":"valid-secret-key"}`}
	clock := &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache := secrets.NewCache(src, zap.NewNop(), secrets.WithClock(clock.Now))
	ctx := context.Background()

	key, ok := cache.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "valid-secret-key", key)

	clock.Advance(4*time.Minute + 59*time.Second)
	key, ok = cache.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "valid-secret-key", key)
	assert.EqualValues(t, 1, src.fetches.Load())

	t.Run("RefetchesAfterExpiry", func(t *testing.T) {
		src.set(`{"apiKey":"rotated-key"}`, nil)
		clock.Advance(time.Second)

		key, ok := cache.Get(ctx)
		assert.True(t, ok)
		assert.Equal(t, "rotated-key", key)
		assert.EqualValues(t, 2, src.fetches.Load())
	})

	t.Run("ResetForcesFetch", func(t *testing.T) {
		cache.Reset()
		_, ok := cache.Get(ctx)
		assert.True(t, ok)
		assert.EqualValues(t, 3, src.fetches.Load())
	})
}

func TestCache_FailuresAreNotCached(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
	}{
		{"SourceError", "", errors.New("store unreachable")},
		{"NotConfigured", "", secrets.ErrNotConfigured},
		{"EmptyPayload", "", nil},
		{"MalformedJSON", "{apiKey:", nil},
		{"MissingField", `{"key":"x"}`, nil},
		{"EmptyField", `{"apiKey":""}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &countingSource{payload: tt.payload, err: tt.err}
			cache := secrets.NewCache(src, zap.NewNop())

			key, ok := cache.Get(context.Background())
			assert.False(t, ok)
			assert.Empty(t, key)

			_, ok = cache.Get(context.Background())
			assert.False(t, ok)
			assert.EqualValues(t, 2, src.fetches.Load())

			// Recovery is picked up on the next call
			src.set(`{"apiKey":"recovered"}`, nil)
			key, ok = cache.Get(context.Background())
			assert.True(t, ok)
			assert.Equal(t, "recovered", key)
		})
	}
}

func TestCache_ConcurrentMissesFetchOnce(t *testing.T) {
	src := &countingSource{payload: `{"apiKey":"k"}`, delay: 20 * time.Millisecond}
	cache := secrets.NewCache(src, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, ok := cache.Get(context.Background())
			assert.True(t, ok)
			assert.Equal(t, "k", key)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, src.fetches.Load())
}

// ctxSource fails when the context it is given is already done.
type ctxSource struct{}

func (ctxSource) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return `{"apiKey":"k1"}`, nil
}

func TestCache_FetchIgnoresCallerCancellation(t *testing.T) {
	cache := secrets.NewCache(ctxSource{}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	key, ok := cache.Get(ctx)
	assert.True(t, ok)
	assert.Equal(t, "k1", key)
}
