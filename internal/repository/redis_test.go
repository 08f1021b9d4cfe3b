package repository_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestURLRedisRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) urlRepository {
		_, client := setupRedis(t)
		return repository.NewURLRedisRepository(client)
	})
}

func TestURLRedisRepository_Layout(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	m := newMapping("Ab3xQ9", "https://example.com/page", 0)
	require.NoError(t, repo.Put(ctx, m))

	raw, err := mr.Get("url:Ab3xQ9")
	require.NoError(t, err)

	var stored domain.Mapping
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "https://example.com/page", stored.OriginalURL)
	assert.Zero(t, mr.TTL("url:Ab3xQ9"), "mapping without expiry has no ttl")

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	seq, err := mr.Get("seq:url")
	require.NoError(t, err)
	assert.Equal(t, "1", seq)
}

func TestURLRedisRepository_NativeTTL(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, newMapping("ttl001", "https://example.com", time.Hour)))

	ttl := mr.TTL("url:ttl001")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	mr.FastForward(time.Hour + time.Second)

	_, err := repo.Get(ctx, "ttl001")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err := repo.Exists(ctx, "ttl001")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestURLRedisRepository_DeactivateKeepsTTL(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, newMapping("keep01", "https://example.com", time.Hour)))
	mr.FastForward(10 * time.Minute)

	found, err := repo.Deactivate(ctx, "keep01")
	require.NoError(t, err)
	assert.True(t, found)

	ttl := mr.TTL("url:keep01")
	assert.Greater(t, ttl, 49*time.Minute)
	assert.LessOrEqual(t, ttl, 50*time.Minute)

	got, err := repo.Get(ctx, "keep01")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestURLRedisRepository_ExpiredPut(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, newMapping("old001", "https://example.com", -time.Hour)))
	mr.FastForward(time.Second)

	_, err := repo.Get(ctx, "old001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestURLRedisRepository_AllSkipsForeignKeys(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, newMapping("abc123", "https://example.com", 0)))
	require.NoError(t, mr.Set("analytics-ish", "x"))
	_, err := repo.NextID(ctx)
	require.NoError(t, err)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "abc123", all[0].ShortCode)
}

func TestURLRedisRepository_Unavailable(t *testing.T) {
	mr, client := setupRedis(t)
	repo := repository.NewURLRedisRepository(client)
	ctx := context.Background()

	mr.Close()

	_, err := repo.Get(ctx, "abc123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	err = repo.Put(ctx, newMapping("abc123", "https://example.com", 0))
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := repository.NewRedisClient(context.Background(), &config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	require.NoError(t, client.Close())

	mr.Close()
	_, err = repository.NewRedisClient(context.Background(), &config.RedisConfig{Addr: addr})
	assert.Error(t, err)
}
