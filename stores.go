package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"shortlink/internal/analytics"
	"shortlink/internal/config"
	"shortlink/internal/domain"
	"shortlink/internal/metrics"
	"shortlink/internal/repository"
	"shortlink/internal/service"
	"shortlink/internal/shortener"
)

type urlStore interface {
	service.Repository
	shortener.Sequence
}

// stores holds the backend picked by STORE_BACKEND. pool is set only for
// postgres and redis only for redis.
type stores struct {
	urls      urlStore
	analytics analytics.Repository
	pool      *pgxpool.Pool
	redis     *redis.Client
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*stores, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := repository.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis store", slog.String("addr", cfg.Redis.Addr))
		return &stores{
			urls:      repository.NewURLRedisRepository(client),
			analytics: analytics.NewRedisRepository(client),
			redis:     client,
		}, nil

	case config.BackendPostgres:
		if cfg.Database.MigrateOnStart {
			if err := repository.Migrate(cfg.Database.DSN()); err != nil {
				return nil, err
			}
			logger.Info("database migrations applied")
		}
		pool, err := repository.NewPool(ctx, &cfg.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres store",
			slog.String("host", cfg.Database.Host),
			slog.String("db", cfg.Database.DBName))
		return &stores{
			urls:      repository.NewURLPostgresRepository(pool),
			analytics: analytics.NewPostgresRepository(pool),
			pool:      pool,
		}, nil

	default:
		logger.Info("using in-memory store")
		return &stores{
			urls:      repository.NewURLMemoryRepository(),
			analytics: analytics.NewMemoryRepository(),
		}, nil
	}
}

// metricsDB is the COPY target for the metrics recorder, nil without postgres.
func (s *stores) metricsDB() metrics.Copier {
	if s.pool == nil {
		return nil
	}
	return s.pool
}

// clickLog returns the raw click sink for the backend, or nil when the
// backend keeps no click log.
func (s *stores) clickLog(cfg *config.Config, logger *slog.Logger) *metrics.Batcher[domain.Click] {
	if !cfg.Analytics.ClickLogEnabled {
		return nil
	}
	bc := metrics.BatcherConfig{
		BufferSize:     cfg.Metrics.BufferSize,
		FlushThreshold: cfg.Metrics.FlushThreshold,
		FlushInterval:  time.Duration(cfg.Metrics.FlushInterval) * time.Millisecond,
	}
	switch {
	case s.pool != nil:
		return analytics.NewPostgresClickLog(s.pool, bc, logger)
	case s.redis != nil:
		return analytics.NewRedisClickLog(s.redis, cfg.Analytics.ClickStreamMaxLen, bc, logger)
	default:
		return nil
	}
}

func (s *stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}

func newGenerator(cfg *config.AppConfig, seq shortener.Sequence) (service.CodeGenerator, error) {
	switch cfg.CodeStrategy {
	case shortener.StrategySequential:
		gen, err := shortener.NewSequential(seq, cfg.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to create sequential generator: %w", err)
		}
		return gen, nil
	default:
		gen, err := shortener.NewRandom(cfg.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("failed to create random generator: %w", err)
		}
		return gen, nil
	}
}
