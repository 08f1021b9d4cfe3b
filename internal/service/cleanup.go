package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// CleanupExpired deactivates every active mapping whose expiry has passed
// and returns how many were changed. Running it again right away returns 0.
func (s *URLService) CleanupExpired(ctx context.Context) (int, error) {
	now := s.now()

	codes, err := s.deactivateExpired(ctx, now)
	for _, code := range codes {
		s.afterDeactivate(ctx, code)
	}
	if len(codes) > 0 {
		s.recorder.RecordBusiness(now, metricURLExpired, float64(len(codes)), nil)
		s.logger.Info("deactivated expired urls", slog.Int("count", len(codes)))
	}
	return len(codes), err
}

// deactivateExpired returns the codes it flipped, also when it stops early
// on an error.
func (s *URLService) deactivateExpired(ctx context.Context, now time.Time) ([]string, error) {
	if bulk, ok := s.repo.(ExpiredDeactivator); ok {
		codes, err := bulk.DeactivateExpired(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("failed to deactivate expired urls: %w", err)
		}
		return codes, nil
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list urls: %w", err)
	}

	var codes []string
	for _, m := range all {
		if !m.IsActive || !m.Expired(now) {
			continue
		}
		changed, err := s.repo.Deactivate(ctx, m.ShortCode)
		if err != nil {
			return codes, fmt.Errorf("failed to deactivate url %s: %w", m.ShortCode, err)
		}
		if changed {
			codes = append(codes, m.ShortCode)
		}
	}
	return codes, nil
}

// RunCleanup calls CleanupExpired every interval until ctx is done. A
// non-positive interval disables the loop.
func (s *URLService) RunCleanup(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Info("expired url cleanup disabled")
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("expired url cleanup started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.CleanupExpired(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("expired url cleanup failed", slog.String("error", err.Error()))
			}
		}
	}
}
