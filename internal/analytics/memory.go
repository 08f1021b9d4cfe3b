package analytics

import (
	"context"
	"sync"
	"time"

	"shortlink/internal/domain"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	stats map[string]*domain.Analytics
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{stats: make(map[string]*domain.Analytics)}
}

func (r *MemoryRepository) Track(_ context.Context, a *domain.Analytics) error {
	c := clone(a)

	r.mu.Lock()
	r.stats[c.ShortCode] = c
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Increment(_ context.Context, code string, at time.Time, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.stats[code]
	if !ok {
		return nil
	}

	a.ClickCount++
	if a.LastAccessedAt == nil || at.After(*a.LastAccessedAt) {
		a.LastAccessedAt = &at
	}
	if a.Day == day {
		a.DayClicks++
	} else {
		a.Day = day
		a.DayClicks = 1
	}
	return nil
}

func (r *MemoryRepository) MarkInactive(_ context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.stats[code]; ok {
		a.IsActive = false
	}
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, code string) (*domain.Analytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.stats[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return clone(a), nil
}

func (r *MemoryRepository) All(_ context.Context) ([]domain.Analytics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Analytics, 0, len(r.stats))
	for _, a := range r.stats {
		out = append(out, *clone(a))
	}
	return out, nil
}

func clone(a *domain.Analytics) *domain.Analytics {
	c := *a
	if a.ExpiresAt != nil {
		t := *a.ExpiresAt
		c.ExpiresAt = &t
	}
	if a.LastAccessedAt != nil {
		t := *a.LastAccessedAt
		c.LastAccessedAt = &t
	}
	return &c
}
