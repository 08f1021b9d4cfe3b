package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/domain"
)

type urlRepository interface {
	Put(ctx context.Context, m *domain.Mapping) error
	Get(ctx context.Context, code string) (*domain.Mapping, error)
	Exists(ctx context.Context, code string) (bool, error)
	Deactivate(ctx context.Context, code string) (bool, error)
	All(ctx context.Context) ([]domain.Mapping, error)
	NextID(ctx context.Context) (uint64, error)
}

func newMapping(code, url string, expiresIn time.Duration) *domain.Mapping {
	now := time.Now().UTC().Truncate(time.Microsecond)
	m := &domain.Mapping{
		ShortCode:   code,
		OriginalURL: url,
		CreatedAt:   now,
		IsActive:    true,
	}
	if expiresIn != 0 {
		exp := now.Add(expiresIn)
		m.ExpiresAt = &exp
	}
	return m
}

func assertSameMapping(t *testing.T, want, got *domain.Mapping) {
	t.Helper()
	assert.Equal(t, want.ShortCode, got.ShortCode)
	assert.Equal(t, want.OriginalURL, got.OriginalURL)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %v, got %v", want.CreatedAt, got.CreatedAt)
	if want.ExpiresAt == nil {
		assert.Nil(t, got.ExpiresAt)
	} else {
		require.NotNil(t, got.ExpiresAt)
		assert.True(t, want.ExpiresAt.Equal(*got.ExpiresAt), "expires_at: want %v, got %v", want.ExpiresAt, got.ExpiresAt)
	}
	assert.Equal(t, want.IsActive, got.IsActive)
}

// runRepositoryContract checks the behaviour every backend shares.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) urlRepository) {
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		exists, err := repo.Exists(ctx, "nope")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("put then get", func(t *testing.T) {
		repo := newRepo(t)
		m := newMapping("Ab3xQ9", "https://example.com/page", 0)

		require.NoError(t, repo.Put(ctx, m))

		got, err := repo.Get(ctx, "Ab3xQ9")
		require.NoError(t, err)
		assertSameMapping(t, m, got)

		exists, err := repo.Exists(ctx, "Ab3xQ9")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("put with expiry", func(t *testing.T) {
		repo := newRepo(t)
		m := newMapping("exp001", "https://example.com/soon", 24*time.Hour)

		require.NoError(t, repo.Put(ctx, m))

		got, err := repo.Get(ctx, "exp001")
		require.NoError(t, err)
		assertSameMapping(t, m, got)
	})

	t.Run("put overwrites", func(t *testing.T) {
		repo := newRepo(t)

		require.NoError(t, repo.Put(ctx, newMapping("dup001", "https://example.com/first", 0)))
		second := newMapping("dup001", "https://example.com/second", 0)
		require.NoError(t, repo.Put(ctx, second))

		got, err := repo.Get(ctx, "dup001")
		require.NoError(t, err)
		assertSameMapping(t, second, got)
	})

	t.Run("returned mapping is a copy", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Put(ctx, newMapping("cpy001", "https://example.com", 0)))

		got, err := repo.Get(ctx, "cpy001")
		require.NoError(t, err)
		got.OriginalURL = "https://changed.example.com"
		got.IsActive = false

		again, err := repo.Get(ctx, "cpy001")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", again.OriginalURL)
		assert.True(t, again.IsActive)
	})

	t.Run("deactivate", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Put(ctx, newMapping("off001", "https://example.com", 0)))

		changed, err := repo.Deactivate(ctx, "off001")
		require.NoError(t, err)
		assert.True(t, changed)

		got, err := repo.Get(ctx, "off001")
		require.NoError(t, err)
		assert.False(t, got.IsActive)
		assert.Equal(t, "https://example.com", got.OriginalURL)

		changed, err = repo.Deactivate(ctx, "off001")
		require.NoError(t, err)
		assert.False(t, changed, "already inactive")

		changed, err = repo.Deactivate(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("concurrent deactivate flips once", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Put(ctx, newMapping("once01", "https://example.com", 0)))

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			changed int
		)
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := repo.Deactivate(ctx, "once01")
				if !assert.NoError(t, err) {
					return
				}
				if ok {
					mu.Lock()
					changed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, changed)
	})

	t.Run("all", func(t *testing.T) {
		repo := newRepo(t)
		want := map[string]string{}
		for i := range 25 {
			code := fmt.Sprintf("all%03d", i)
			url := fmt.Sprintf("https://example.com/%d", i)
			want[code] = url
			require.NoError(t, repo.Put(ctx, newMapping(code, url, 0)))
		}

		all, err := repo.All(ctx)
		require.NoError(t, err)

		got := map[string]string{}
		for _, m := range all {
			got[m.ShortCode] = m.OriginalURL
		}
		assert.Equal(t, want, got)
	})

	t.Run("next id increases", func(t *testing.T) {
		repo := newRepo(t)

		prev, err := repo.NextID(ctx)
		require.NoError(t, err)
		for range 10 {
			id, err := repo.NextID(ctx)
			require.NoError(t, err)
			assert.Greater(t, id, prev)
			prev = id
		}
	})

	t.Run("concurrent put and get never tear", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Put(ctx, newMapping("race01", "https://example.com/0", 0)))

		var wg sync.WaitGroup
		for i := range 8 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				for j := range 20 {
					n := i*100 + j
					m := newMapping("race01", fmt.Sprintf("https://example.com/%d", n), 0)
					m.CreatedAt = time.Unix(int64(n), 0).UTC()
					assert.NoError(t, repo.Put(ctx, m))
				}
			}()
			go func() {
				defer wg.Done()
				for range 20 {
					got, err := repo.Get(ctx, "race01")
					if !assert.NoError(t, err) {
						return
					}
					if got.OriginalURL == "https://example.com/0" {
						continue
					}
					want := fmt.Sprintf("https://example.com/%d", got.CreatedAt.Unix())
					assert.Equal(t, want, got.OriginalURL)
				}
			}()
		}
		wg.Wait()
	})
}
