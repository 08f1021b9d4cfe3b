package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"shortlink/internal/domain"
)

type URLService interface {
	CreateShortURL(ctx context.Context, rawURL string, ttlDays int) (*domain.Mapping, error)
	CreateShortURLBatch(ctx context.Context, urls []string, ttlDays int) ([]*domain.Mapping, error)
	Resolve(ctx context.Context, code string, client domain.ClientInfo) (string, error)
	Lookup(ctx context.Context, code string) (*domain.Mapping, error)
	Deactivate(ctx context.Context, code string) (bool, error)
	Exists(ctx context.Context, code string) (bool, error)
	ClickCount(ctx context.Context, code string) (int64, error)
	GetAnalytics(ctx context.Context, code string) (*domain.Analytics, error)
	GetSummary(ctx context.Context) (*domain.Summary, error)
	ShortURL(code string) string
}

type BusinessRecorder interface {
	RecordBusiness(t time.Time, name string, value float64, labelsJSON []byte)
}
