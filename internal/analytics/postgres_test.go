//go:build integration

package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"shortlink/internal/analytics"
	"shortlink/internal/domain"
	"shortlink/internal/repository"
)

func setupPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("shortlink"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(dsn))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestPostgresRepository(t *testing.T) {
	pool := setupPostgres(t)

	runRepositoryContract(t, func(t *testing.T) analytics.Repository {
		_, err := pool.Exec(context.Background(), `TRUNCATE url_analytics`)
		require.NoError(t, err)
		return analytics.NewPostgresRepository(pool)
	})
}

func TestPostgresClickLog_Integration(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	log := analytics.NewPostgresClickLog(pool, flushOnClose, discard)
	log.Start(ctx)
	for range 3 {
		log.Add(domain.Click{ShortCode: "abc123", Time: time.Now(), IPAddress: "203.0.113.7"})
	}
	log.Close()

	var n int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM url_clicks WHERE short_code = 'abc123'`).Scan(&n))
	assert.Equal(t, 3, n)
}
