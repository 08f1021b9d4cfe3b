package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/config"
	"shortlink/internal/domain"
)

func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

type URLPostgresRepository struct {
	pool *pgxpool.Pool
}

func NewURLPostgresRepository(pool *pgxpool.Pool) *URLPostgresRepository {
	return &URLPostgresRepository{pool: pool}
}

func (r *URLPostgresRepository) Put(ctx context.Context, m *domain.Mapping) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO urls (short_code, original_url, created_at, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (short_code) DO UPDATE SET
			original_url = EXCLUDED.original_url,
			created_at   = EXCLUDED.created_at,
			expires_at   = EXCLUDED.expires_at,
			is_active    = EXCLUDED.is_active`,
		m.ShortCode, m.OriginalURL, m.CreatedAt, m.ExpiresAt, m.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to store mapping: %w", err)
	}
	return nil
}

func (r *URLPostgresRepository) Get(ctx context.Context, code string) (*domain.Mapping, error) {
	var m domain.Mapping
	err := r.pool.QueryRow(ctx, `
		SELECT short_code, original_url, created_at, expires_at, is_active
		FROM urls WHERE short_code = $1`, code,
	).Scan(&m.ShortCode, &m.OriginalURL, &m.CreatedAt, &m.ExpiresAt, &m.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return &m, nil
}

func (r *URLPostgresRepository) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM urls WHERE short_code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check mapping: %w", err)
	}
	return exists, nil
}

func (r *URLPostgresRepository) Deactivate(ctx context.Context, code string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE urls SET is_active = FALSE WHERE short_code = $1 AND is_active`, code)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate mapping: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *URLPostgresRepository) All(ctx context.Context) ([]domain.Mapping, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT short_code, original_url, created_at, expires_at, is_active
		FROM urls ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Mapping, error) {
		var m domain.Mapping
		err := row.Scan(&m.ShortCode, &m.OriginalURL, &m.CreatedAt, &m.ExpiresAt, &m.IsActive)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return out, nil
}

func (r *URLPostgresRepository) NextID(ctx context.Context) (uint64, error) {
	var id int64
	if err := r.pool.QueryRow(ctx, `SELECT nextval('short_code_seq')`).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to get next id: %w", err)
	}
	return uint64(id), nil
}

// DeactivateExpired flips every active mapping whose expiry is at or before
// now in a single statement and returns the affected codes.
func (r *URLPostgresRepository) DeactivateExpired(ctx context.Context, now time.Time) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		UPDATE urls SET is_active = FALSE
		WHERE is_active AND expires_at IS NOT NULL AND expires_at <= $1
		RETURNING short_code`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate expired mappings: %w", err)
	}

	codes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to deactivate expired mappings: %w", err)
	}
	return codes, nil
}
