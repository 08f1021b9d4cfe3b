package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/cache"
	"shortlink/internal/domain"
)

func newCache(t *testing.T, ttl time.Duration) *cache.URLCache {
	t.Helper()
	c, err := cache.New(20, ttl) // 2^20 = 1MB
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func mapping(code, url string) *domain.Mapping {
	return &domain.Mapping{
		ShortCode:   code,
		OriginalURL: url,
		CreatedAt:   time.Now(),
		IsActive:    true,
	}
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, time.Minute) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c := newCache(t, time.Minute)

	m, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Nil(t, m)
}

func TestSetThenGet(t *testing.T) {
	c := newCache(t, time.Minute)

	want := mapping("abc123", "https://example.com/very/long/path")
	c.Set(want)
	c.Wait()

	got, found := c.Get("abc123")
	require.True(t, found)
	assert.Equal(t, want.OriginalURL, got.OriginalURL)
	assert.True(t, got.IsActive)
}

func TestGet_ReturnsCopy(t *testing.T) {
	c := newCache(t, time.Minute)

	m := mapping("abc123", "https://example.com")
	c.Set(m)
	c.Wait()
	m.IsActive = false

	got, found := c.Get("abc123")
	require.True(t, found)
	assert.True(t, got.IsActive, "cache must not alias the caller's mapping")

	got.OriginalURL = "https://changed.example.com"
	again, _ := c.Get("abc123")
	assert.Equal(t, "https://example.com", again.OriginalURL)
}

func TestSet_UpdateExisting(t *testing.T) {
	c := newCache(t, time.Minute)

	c.Set(mapping("abc123", "https://example.com/first"))
	c.Wait()
	c.Set(mapping("abc123", "https://example.com/second"))
	c.Wait()

	got, found := c.Get("abc123")
	require.True(t, found)
	assert.Equal(t, "https://example.com/second", got.OriginalURL)
}

func TestSet_SkipsExpired(t *testing.T) {
	c := newCache(t, time.Minute)

	m := mapping("old123", "https://example.com")
	past := time.Now().Add(-time.Second)
	m.ExpiresAt = &past

	c.Set(m)
	c.Wait()

	_, found := c.Get("old123")
	assert.False(t, found)
}

func TestSet_TTLBoundedByExpiry(t *testing.T) {
	c := newCache(t, time.Hour)

	m := mapping("soon12", "https://example.com")
	soon := time.Now().Add(50 * time.Millisecond)
	m.ExpiresAt = &soon

	c.Set(m)
	c.Wait()

	_, found := c.Get("soon12")
	require.True(t, found)

	assert.Eventually(t, func() bool {
		_, found := c.Get("soon12")
		return !found
	}, 3*time.Second, 20*time.Millisecond)
}

func TestDelete(t *testing.T) {
	c := newCache(t, time.Minute)

	c.Set(mapping("abc123", "https://example.com"))
	c.Wait()
	c.Delete("abc123")

	_, found := c.Get("abc123")
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	c := newCache(t, time.Minute)

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get("nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set(mapping("key1", "https://example.com"))
	c.Wait()
	c.Get("key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}

func TestFill_StoresWhenNothingDeleted(t *testing.T) {
	c := newCache(t, time.Minute)

	gen := c.Generation()
	assert.True(t, c.Fill(mapping("abc123", "https://example.com"), gen))
	c.Wait()

	_, found := c.Get("abc123")
	assert.True(t, found)
}

func TestFill_DroppedAfterDelete(t *testing.T) {
	c := newCache(t, time.Minute)

	gen := c.Generation()
	c.Delete("abc123")

	assert.False(t, c.Fill(mapping("abc123", "https://example.com"), gen))
	c.Wait()

	_, found := c.Get("abc123")
	assert.False(t, found)

	assert.True(t, c.Fill(mapping("abc123", "https://example.com"), c.Generation()))
}

func TestDelete_AfterBufferedSet(t *testing.T) {
	c := newCache(t, time.Minute)

	c.Set(mapping("abc123", "https://example.com"))
	c.Delete("abc123")
	c.Wait()

	_, found := c.Get("abc123")
	assert.False(t, found)
}

func TestWithClock_BoundsByMappingExpiry(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	c, err := cache.New(20, time.Minute, cache.WithClock(func() time.Time { return now }))
	require.NoError(t, err)
	t.Cleanup(c.Close)

	m := mapping("clk123", "https://example.com")
	exp := now.Add(time.Hour)
	m.ExpiresAt = &exp

	c.Set(m)
	c.Wait()

	_, found := c.Get("clk123")
	assert.True(t, found, "expiry is judged against the injected clock")
}
