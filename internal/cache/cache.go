package cache

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"shortlink/internal/domain"
)

// entryOverhead approximates the fixed part of a cached mapping in bytes.
const entryOverhead = 64

// URLCache is a read-through cache of mappings keyed by short code.
type URLCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
	now   func() time.Time

	// mu orders Fill against Delete. gen counts deletes.
	mu  sync.Mutex
	gen uint64
}

type Option func(*URLCache)

// WithClock replaces time.Now when bounding entries by mapping expiry.
func WithClock(now func() time.Time) Option {
	return func(c *URLCache) {
		c.now = now
	}
}

// New sizes the cache at 2^maxSizePow2 bytes. Entries live for at most ttl
// and never past the mapping's own expiry; ttl 0 only bounds by expiry.
func New(maxSizePow2 int, ttl time.Duration, opts ...Option) (*URLCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/100) // ~100 bytes per entry estimate

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	c := &URLCache{cache: cache, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *URLCache) Get(code string) (*domain.Mapping, bool) {
	val, found := c.cache.Get(code)
	if !found {
		return nil, false
	}
	return val.(*domain.Mapping).Clone(), true
}

// Set stores a copy of m. Mappings that are already expired are not cached.
// Use Fill for mappings read from a store that a concurrent Delete may have
// changed.
func (c *URLCache) Set(m *domain.Mapping) {
	ttl := c.ttl
	if m.ExpiresAt != nil {
		left := m.ExpiresAt.Sub(c.now())
		if left <= 0 {
			return
		}
		if ttl == 0 || left < ttl {
			ttl = left
		}
	}

	cost := int64(entryOverhead + len(m.ShortCode) + len(m.OriginalURL))
	c.cache.SetWithTTL(m.ShortCode, m.Clone(), cost, ttl)
}

// Generation is taken before reading a mapping from the store and handed to
// Fill afterwards.
func (c *URLCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// Fill stores m unless a Delete ran since gen was taken, in which case m may
// predate it and is dropped. It reports whether m was stored.
func (c *URLCache) Fill(m *domain.Mapping, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.Set(m)
	return true
}

// Delete removes code and invalidates every Fill still in flight.
func (c *URLCache) Delete(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	c.cache.Del(code)
}

// Wait blocks until buffered writes are applied.
func (c *URLCache) Wait() {
	c.cache.Wait()
}

func (c *URLCache) Close() {
	c.cache.Close()
}

func (c *URLCache) Stats() (hits, misses uint64, ratio float64) {
	metrics := c.cache.Metrics
	hits = metrics.Hits()
	misses = metrics.Misses()
	ratio = metrics.Ratio()
	return
}
