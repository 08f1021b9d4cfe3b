package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"shortlink/internal/domain"
	"shortlink/internal/metrics"
)

const ClickStream = "clicks"

var clickColumns = []string{"time", "short_code", "ip_address", "user_agent", "referer"}

func clickRow(c domain.Click) []any {
	return []any{c.Time, c.ShortCode, nullable(c.IPAddress), nullable(c.UserAgent), nullable(c.Referer)}
}

// NewPostgresClickLog batches raw clicks into url_clicks.
func NewPostgresClickLog(db metrics.Copier, cfg metrics.BatcherConfig, logger *slog.Logger) *metrics.Batcher[domain.Click] {
	return metrics.NewBatcher("url_clicks", cfg, metrics.CopyWriter(db, "url_clicks", clickColumns, clickRow), logger)
}

// NewRedisClickLog batches raw clicks onto the clicks stream, trimmed to
// roughly maxLen entries.
func NewRedisClickLog(client *redis.Client, maxLen int64, cfg metrics.BatcherConfig, logger *slog.Logger) *metrics.Batcher[domain.Click] {
	return metrics.NewBatcher("click_stream", cfg, streamWriter(client, maxLen), logger)
}

func streamWriter(client *redis.Client, maxLen int64) metrics.Writer[domain.Click] {
	return func(ctx context.Context, batch []domain.Click) error {
		_, err := client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, c := range batch {
				pipe.XAdd(ctx, &redis.XAddArgs{
					Stream: ClickStream,
					MaxLen: maxLen,
					Approx: true,
					Values: map[string]any{
						"short_code": c.ShortCode,
						"time":       c.Time.Format(time.RFC3339Nano),
						"ip_address": c.IPAddress,
						"user_agent": c.UserAgent,
						"referer":    c.Referer,
					},
				})
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to append clicks to stream: %w", err)
		}
		return nil
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
