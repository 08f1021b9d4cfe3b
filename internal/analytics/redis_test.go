package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/analytics"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestRedisRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) analytics.Repository {
		_, client := setupRedis(t)
		return analytics.NewRedisRepository(client)
	})
}

func TestRedisRepository_HashLayout(t *testing.T) {
	mr, client := setupRedis(t)
	repo := analytics.NewRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Track(ctx, tracked("abc123", time.Now())))
	require.NoError(t, repo.Increment(ctx, "abc123", time.Now(), "2025-03-10"))

	assert.True(t, mr.Exists("analytics:abc123"))
	assert.Equal(t, "1", mr.HGet("analytics:abc123", "click_count"))
	assert.Equal(t, "1", mr.HGet("analytics:abc123", "is_active"))
	assert.Zero(t, mr.TTL("analytics:abc123"))
}

func TestRedisRepository_ExpiresWithMapping(t *testing.T) {
	mr, client := setupRedis(t)
	repo := analytics.NewRedisRepository(client)
	ctx := context.Background()

	a := tracked("ttl001", time.Now())
	exp := time.Now().Add(time.Hour)
	a.ExpiresAt = &exp
	require.NoError(t, repo.Track(ctx, a))

	ttl := mr.TTL("analytics:ttl001")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	mr.FastForward(time.Hour + time.Second)

	require.NoError(t, repo.Increment(ctx, "ttl001", time.Now(), "2025-03-10"))
	assert.False(t, mr.Exists("analytics:ttl001"), "clicks must not recreate an expired hash")
}

func TestRedisRepository_TrackResetsCounters(t *testing.T) {
	_, client := setupRedis(t)
	repo := analytics.NewRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Track(ctx, tracked("re0001", time.Now())))
	require.NoError(t, repo.Increment(ctx, "re0001", time.Now(), "2025-03-10"))
	require.NoError(t, repo.Track(ctx, tracked("re0001", time.Now())))

	got, err := repo.Get(ctx, "re0001")
	require.NoError(t, err)
	assert.Zero(t, got.ClickCount)
	assert.Nil(t, got.LastAccessedAt)
}

func TestRedisRepository_Unavailable(t *testing.T) {
	mr, client := setupRedis(t)
	repo := analytics.NewRedisRepository(client)
	ctx := context.Background()

	mr.Close()

	assert.Error(t, repo.Increment(ctx, "abc123", time.Now(), "2025-03-10"))
	_, err := repo.All(ctx)
	assert.Error(t, err)
}
