package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
	"shortlink/internal/repository"
	"shortlink/internal/service"
)

func TestCachedService_RoundTrip(t *testing.T) {
	e := newEnv(t, service.Config{}, withCache())
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com/cached", 0)
	require.NoError(t, err)
	e.settle()

	cached, ok := e.cache.Get(m.ShortCode)
	require.True(t, ok, "create warms the cache")
	assert.Equal(t, m.OriginalURL, cached.OriginalURL)

	for range 3 {
		got, err := e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
		require.NoError(t, err)
		assert.Equal(t, m.OriginalURL, got)
	}

	got, err := e.svc.Lookup(ctx, m.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, m.OriginalURL, got.OriginalURL)

	e.flush()
	count, err := e.svc.ClickCount(ctx, m.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCachedService_MissFillsCache(t *testing.T) {
	e := newEnv(t, service.Config{}, withCache())
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com", 0)
	require.NoError(t, err)
	e.settle()
	e.cache.Delete(m.ShortCode)

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	require.NoError(t, err)
	e.settle()

	_, ok := e.cache.Get(m.ShortCode)
	assert.True(t, ok)
}

func TestCachedService_DeactivateThenResolve(t *testing.T) {
	e := newEnv(t, service.Config{}, withCache())
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com", 0)
	require.NoError(t, err)
	e.settle()

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	require.NoError(t, err)

	ok, err := e.svc.Deactivate(ctx, m.ShortCode)
	require.NoError(t, err)
	require.True(t, ok)
	e.settle()

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = e.svc.Lookup(ctx, m.ShortCode)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err = e.svc.Deactivate(ctx, m.ShortCode)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCachedService_ExpiryAndCleanup(t *testing.T) {
	e := newEnv(t, service.Config{}, withCache())
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com", 1)
	require.NoError(t, err)
	e.settle()

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	require.NoError(t, err)
	_, ok := e.cache.Get(m.ShortCode)
	require.True(t, ok)

	e.clock.Advance(48 * time.Hour)

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrNotFound, "a cached copy past its expiry is not served")

	n, err := e.svc.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	e.settle()

	_, ok = e.cache.Get(m.ShortCode)
	assert.False(t, ok, "cleanup evicts expired codes")
}

// slowRepo holds the first Get after it has read from the store until
// release is closed.
type slowRepo struct {
	*repository.URLMemoryRepository
	read    chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *slowRepo) Get(ctx context.Context, code string) (*domain.Mapping, error) {
	m, err := r.URLMemoryRepository.Get(ctx, code)
	r.once.Do(func() {
		close(r.read)
		<-r.release
	})
	return m, err
}

func TestCachedService_DeactivateDuringMissIsNotRefilled(t *testing.T) {
	slow := &slowRepo{read: make(chan struct{}), release: make(chan struct{})}
	e := newEnv(t, service.Config{}, withCache(), withRepo(func(r *repository.URLMemoryRepository) service.Repository {
		slow.URLMemoryRepository = r
		return slow
	}))
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com", 0)
	require.NoError(t, err)
	e.settle()
	e.cache.Delete(m.ShortCode)

	resolved := make(chan error, 1)
	go func() {
		_, err := e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
		resolved <- err
	}()

	select {
	case <-slow.read:
	case <-time.After(time.Second):
		t.Fatal("resolve never reached the repository")
	}

	ok, err := e.svc.Deactivate(ctx, m.ShortCode)
	require.NoError(t, err)
	require.True(t, ok)

	close(slow.release)
	require.NoError(t, <-resolved, "the in-flight resolve read the mapping while it was active")
	e.settle()

	_, cached := e.cache.Get(m.ShortCode)
	assert.False(t, cached, "the pre-deactivation copy must not reach the cache")

	_, err = e.svc.Resolve(ctx, m.ShortCode, domain.ClientInfo{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeactivate_ConcurrentCallsReportOnce(t *testing.T) {
	e := newEnv(t, service.Config{}, withCache())
	ctx := context.Background()

	m, err := e.svc.CreateShortURL(ctx, "https://example.com", 0)
	require.NoError(t, err)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := e.svc.Deactivate(ctx, m.ShortCode)
			if !assert.NoError(t, err) {
				return
			}
			if ok {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, won)
}
