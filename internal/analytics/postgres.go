package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shortlink/internal/domain"
)

const selectAnalytics = `
	SELECT short_code, original_url, short_url, created_at, expires_at, is_active,
	       click_count, last_accessed_at, COALESCE(day, ''), day_clicks
	FROM url_analytics`

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Track(ctx context.Context, a *domain.Analytics) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO url_analytics (short_code, original_url, short_url, created_at, expires_at, is_active,
		                           click_count, last_accessed_at, day, day_clicks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
		ON CONFLICT (short_code) DO UPDATE SET
			original_url     = EXCLUDED.original_url,
			short_url        = EXCLUDED.short_url,
			created_at       = EXCLUDED.created_at,
			expires_at       = EXCLUDED.expires_at,
			is_active        = EXCLUDED.is_active,
			click_count      = EXCLUDED.click_count,
			last_accessed_at = EXCLUDED.last_accessed_at,
			day              = EXCLUDED.day,
			day_clicks       = EXCLUDED.day_clicks`,
		a.ShortCode, a.OriginalURL, a.ShortURL, a.CreatedAt, a.ExpiresAt, a.IsActive,
		a.ClickCount, a.LastAccessedAt, a.Day, a.DayClicks,
	)
	if err != nil {
		return fmt.Errorf("failed to track analytics: %w", err)
	}
	return nil
}

// Increment updates all counters in one statement; the row lock serializes
// concurrent clicks on the same code.
func (r *PostgresRepository) Increment(ctx context.Context, code string, at time.Time, day string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE url_analytics SET
			click_count      = click_count + 1,
			last_accessed_at = GREATEST(COALESCE(last_accessed_at, $2), $2),
			day_clicks       = CASE WHEN day = $3 THEN day_clicks + 1 ELSE 1 END,
			day              = $3
		WHERE short_code = $1`,
		code, at, day,
	)
	if err != nil {
		return fmt.Errorf("failed to increment clicks: %w", err)
	}
	return nil
}

func (r *PostgresRepository) MarkInactive(ctx context.Context, code string) error {
	_, err := r.pool.Exec(ctx, `UPDATE url_analytics SET is_active = FALSE WHERE short_code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to mark analytics inactive: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, code string) (*domain.Analytics, error) {
	rows, err := r.pool.Query(ctx, selectAnalytics+` WHERE short_code = $1`, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}

	a, err := pgx.CollectExactlyOneRow(rows, scanAnalytics)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) All(ctx context.Context) ([]domain.Analytics, error) {
	rows, err := r.pool.Query(ctx, selectAnalytics)
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}

	out, err := pgx.CollectRows(rows, scanAnalytics)
	if err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	return out, nil
}

func scanAnalytics(row pgx.CollectableRow) (domain.Analytics, error) {
	var a domain.Analytics
	err := row.Scan(
		&a.ShortCode, &a.OriginalURL, &a.ShortURL, &a.CreatedAt, &a.ExpiresAt, &a.IsActive,
		&a.ClickCount, &a.LastAccessedAt, &a.Day, &a.DayClicks,
	)
	return a, err
}
