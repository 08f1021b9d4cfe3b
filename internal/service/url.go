package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shortlink/internal/domain"
	"shortlink/internal/shortener"
)

const (
	metricURLCreated     = "url_created"
	metricURLResolved    = "url_resolved"
	metricURLNotFound    = "url_not_found"
	metricURLDeactivated = "url_deactivated"
	metricURLExpired     = "url_expired"
	metricCacheHit       = "cache_hit"
	metricCacheMiss      = "cache_miss"
)

type Config struct {
	BaseURL string
	// DefaultExpirationDays applies when the caller passes ttlDays <= 0.
	// Zero means mappings never expire.
	DefaultExpirationDays int
	MaxAttempts           int
}

type Deps struct {
	Repo      Repository
	Generator CodeGenerator
	Validator URLValidator
	Analytics Analytics
	Clicks    ClickDispatcher
	Recorder  BusinessRecorder
	Logger    *slog.Logger
	// Cache is optional.
	Cache Cache
	// Now defaults to time.Now.
	Now func() time.Time
}

type URLService struct {
	repo      Repository
	gen       CodeGenerator
	validator URLValidator
	analytics Analytics
	clicks    ClickDispatcher
	recorder  BusinessRecorder
	cache     Cache
	logger    *slog.Logger
	now       func() time.Time
	cfg       Config
}

func NewURLService(deps Deps, cfg Config) *URLService {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &URLService{
		repo:      deps.Repo,
		gen:       deps.Generator,
		validator: deps.Validator,
		analytics: deps.Analytics,
		clicks:    deps.Clicks,
		recorder:  deps.Recorder,
		cache:     deps.Cache,
		logger:    deps.Logger,
		now:       now,
		cfg:       cfg,
	}
}

// CreateShortURL validates rawURL, allocates an unused code and stores the
// mapping. ttlDays > 0 sets the expiry; otherwise the configured default applies.
func (s *URLService) CreateShortURL(ctx context.Context, rawURL string, ttlDays int) (*domain.Mapping, error) {
	if err := s.validator.ValidateURL(rawURL); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}
	return s.create(ctx, rawURL, ttlDays)
}

// CreateShortURLBatch validates every URL before creating any mapping. A
// storage failure midway leaves the mappings created so far in place.
func (s *URLService) CreateShortURLBatch(ctx context.Context, urls []string, ttlDays int) ([]*domain.Mapping, error) {
	if err := s.validator.ValidateBatch(urls); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidURL, err)
	}

	out := make([]*domain.Mapping, 0, len(urls))
	for i, u := range urls {
		m, err := s.create(ctx, u, ttlDays)
		if err != nil {
			return nil, fmt.Errorf("failed to create url %d: %w", i, err)
		}
		out = append(out, m)
	}
	return out, nil
}

func (s *URLService) create(ctx context.Context, rawURL string, ttlDays int) (*domain.Mapping, error) {
	code, err := s.allocate(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	m := &domain.Mapping{
		ShortCode:   code,
		OriginalURL: rawURL,
		CreatedAt:   now,
		ExpiresAt:   s.expiresAt(now, ttlDays),
		IsActive:    true,
	}

	if err := s.repo.Put(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to store url: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(m)
	}

	s.analytics.Track(ctx, domain.Analytics{
		ShortCode:   m.ShortCode,
		OriginalURL: m.OriginalURL,
		ShortURL:    s.ShortURL(m.ShortCode),
		CreatedAt:   m.CreatedAt,
		ExpiresAt:   m.ExpiresAt,
		IsActive:    true,
	})
	s.recorder.RecordBusiness(now, metricURLCreated, 1, nil)

	return m, nil
}

// allocate draws candidates until one is unused. Two callers drawing the same
// unused code at the same moment both succeed and the later Put wins.
func (s *URLService) allocate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		code, err := s.gen.Next(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to generate short code: %w", err)
		}

		exists, err := s.repo.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check short code: %w", err)
		}
		if !exists {
			return code, nil
		}

		s.logger.Debug("short code collision",
			slog.String("short_code", code),
			slog.Int("attempt", attempt))
	}

	s.logger.Error("short code space exhausted", slog.Int("attempts", s.cfg.MaxAttempts))
	return "", domain.ErrCodeSpaceExhausted
}

func (s *URLService) expiresAt(now time.Time, ttlDays int) *time.Time {
	days := ttlDays
	if days <= 0 {
		days = s.cfg.DefaultExpirationDays
	}
	if days <= 0 {
		return nil
	}
	exp := now.AddDate(0, 0, days)
	return &exp
}

// Resolve returns the original URL of an accessible mapping and queues a
// click for it. Missing, inactive and expired codes all yield ErrNotFound.
func (s *URLService) Resolve(ctx context.Context, code string, client domain.ClientInfo) (string, error) {
	m, err := s.Lookup(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.recorder.RecordBusiness(s.now(), metricURLNotFound, 1, nil)
		}
		return "", err
	}

	now := s.now()
	s.clicks.Enqueue(domain.Click{
		ShortCode: m.ShortCode,
		Time:      now,
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		Referer:   client.Referer,
	})
	s.recorder.RecordBusiness(now, metricURLResolved, 1, nil)

	return m.OriginalURL, nil
}

// Lookup returns an accessible mapping without recording a click.
func (s *URLService) Lookup(ctx context.Context, code string) (*domain.Mapping, error) {
	m, err := s.get(ctx, code)
	if err != nil {
		return nil, err
	}
	if !m.Accessible(s.now()) {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (s *URLService) get(ctx context.Context, code string) (*domain.Mapping, error) {
	if len(code) > shortener.MaxLength || !shortener.IsValid(code) {
		return nil, domain.ErrNotFound
	}

	var gen uint64
	if s.cache != nil {
		if m, ok := s.cache.Get(code); ok {
			s.recorder.RecordBusiness(s.now(), metricCacheHit, 1, nil)
			return m, nil
		}
		s.recorder.RecordBusiness(s.now(), metricCacheMiss, 1, nil)
		gen = s.cache.Generation()
	}

	m, err := s.repo.Get(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find url: %w", err)
	}

	// A deactivation that finished during the read invalidates gen, so the
	// stale copy never reaches the cache.
	if s.cache != nil {
		s.cache.Fill(m, gen)
	}
	return m, nil
}

// Deactivate soft-deletes an active mapping. It returns false when the code
// is unknown or already inactive, so of two concurrent calls only one wins.
func (s *URLService) Deactivate(ctx context.Context, code string) (bool, error) {
	changed, err := s.repo.Deactivate(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate url: %w", err)
	}
	if !changed {
		return false, nil
	}

	s.afterDeactivate(ctx, code)
	s.recorder.RecordBusiness(s.now(), metricURLDeactivated, 1, nil)
	return true, nil
}

func (s *URLService) Exists(ctx context.Context, code string) (bool, error) {
	exists, err := s.repo.Exists(ctx, code)
	if err != nil {
		return false, fmt.Errorf("failed to check url: %w", err)
	}
	return exists, nil
}

func (s *URLService) ClickCount(ctx context.Context, code string) (int64, error) {
	return s.analytics.ClickCount(ctx, code)
}

func (s *URLService) GetAnalytics(ctx context.Context, code string) (*domain.Analytics, error) {
	return s.analytics.GetAnalytics(ctx, code)
}

func (s *URLService) GetSummary(ctx context.Context) (*domain.Summary, error) {
	return s.analytics.Summary(ctx)
}

// ShortURL is the display form of a code. It plays no part in lookups.
func (s *URLService) ShortURL(code string) string {
	return s.cfg.BaseURL + "/" + code
}

func (s *URLService) afterDeactivate(ctx context.Context, code string) {
	if s.cache != nil {
		s.cache.Delete(code)
	}
	s.analytics.MarkInactive(ctx, code)
}
