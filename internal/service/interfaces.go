package service

//go:generate go tool mockery

import (
	"context"
	"time"

	"shortlink/internal/domain"
)

type Repository interface {
	Put(ctx context.Context, m *domain.Mapping) error
	Get(ctx context.Context, code string) (*domain.Mapping, error)
	Exists(ctx context.Context, code string) (bool, error)
	Deactivate(ctx context.Context, code string) (bool, error)
	All(ctx context.Context) ([]domain.Mapping, error)
}

// ExpiredDeactivator is implemented by stores that can deactivate expired
// mappings in bulk.
type ExpiredDeactivator interface {
	DeactivateExpired(ctx context.Context, now time.Time) ([]string, error)
}

type Cache interface {
	Get(code string) (*domain.Mapping, bool)
	Set(m *domain.Mapping)
	Generation() uint64
	Fill(m *domain.Mapping, gen uint64) bool
	Delete(code string)
}

type CodeGenerator interface {
	Next(ctx context.Context) (string, error)
}

type URLValidator interface {
	ValidateURL(rawURL string) error
	ValidateBatch(urls []string) error
}

type Analytics interface {
	Track(ctx context.Context, a domain.Analytics)
	MarkInactive(ctx context.Context, code string)
	GetAnalytics(ctx context.Context, code string) (*domain.Analytics, error)
	ClickCount(ctx context.Context, code string) (int64, error)
	Summary(ctx context.Context) (*domain.Summary, error)
}

type ClickDispatcher interface {
	Enqueue(click domain.Click) bool
}

type BusinessRecorder interface {
	RecordBusiness(t time.Time, name string, value float64, labelsJSON []byte)
}
