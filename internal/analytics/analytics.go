package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/domain"
)

const dayLayout = "2006-01-02"

// Repository stores per-code analytics. Increment and MarkInactive on an
// untracked code are no-ops.
type Repository interface {
	Track(ctx context.Context, a *domain.Analytics) error
	Increment(ctx context.Context, code string, at time.Time, day string) error
	MarkInactive(ctx context.Context, code string) error
	Get(ctx context.Context, code string) (*domain.Analytics, error)
	All(ctx context.Context) ([]domain.Analytics, error)
}

// ClickLog receives raw clicks. Add must not block.
type ClickLog interface {
	Add(click domain.Click) bool
}

type Option func(*Recorder)

func WithClickLog(l ClickLog) Option {
	return func(r *Recorder) { r.clicks = l }
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// Recorder is the best-effort analytics front. Write paths log and swallow
// every failure; read paths return errors.
type Recorder struct {
	repo   Repository
	clicks ClickLog
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// NewRecorder computes calendar days in loc.
func NewRecorder(repo Repository, loc *time.Location, logger *slog.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) RecordClick(ctx context.Context, click domain.Click) {
	defer r.recoverPanic("record click", click.ShortCode)

	if click.Time.IsZero() {
		click.Time = r.now()
	}

	if err := r.repo.Increment(ctx, click.ShortCode, click.Time, r.day(click.Time)); err != nil {
		r.logger.Warn("failed to record click",
			slog.String("short_code", click.ShortCode),
			slog.String("error", err.Error()))
	}

	if r.clicks != nil {
		r.clicks.Add(click)
	}
}

func (r *Recorder) Track(ctx context.Context, a domain.Analytics) {
	defer r.recoverPanic("track", a.ShortCode)

	if err := r.repo.Track(ctx, &a); err != nil {
		r.logger.Warn("failed to track url",
			slog.String("short_code", a.ShortCode),
			slog.String("error", err.Error()))
	}
}

func (r *Recorder) MarkInactive(ctx context.Context, code string) {
	defer r.recoverPanic("mark inactive", code)

	if err := r.repo.MarkInactive(ctx, code); err != nil {
		r.logger.Warn("failed to mark analytics inactive",
			slog.String("short_code", code),
			slog.String("error", err.Error()))
	}
}

func (r *Recorder) GetAnalytics(ctx context.Context, code string) (*domain.Analytics, error) {
	return r.repo.Get(ctx, code)
}

func (r *Recorder) ClickCount(ctx context.Context, code string) (int64, error) {
	a, err := r.repo.Get(ctx, code)
	if err != nil {
		return 0, err
	}
	return a.ClickCount, nil
}

func (r *Recorder) Summary(ctx context.Context) (*domain.Summary, error) {
	all, err := r.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load analytics: %w", err)
	}
	return summarize(all, r.now(), r.loc), nil
}

func (r *Recorder) day(t time.Time) string {
	return t.In(r.loc).Format(dayLayout)
}

func (r *Recorder) recoverPanic(op, code string) {
	if p := recover(); p != nil {
		r.logger.Error("analytics panic recovered",
			slog.String("op", op),
			slog.String("short_code", code),
			slog.Any("panic", p))
	}
}
