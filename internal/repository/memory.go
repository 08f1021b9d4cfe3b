package repository

import (
	"context"
	"sync"

	"shortlink/internal/domain"
)

// URLMemoryRepository keeps mappings in process memory. Values are copied on
// the way in and out so callers never share state with the map.
type URLMemoryRepository struct {
	mu   sync.RWMutex
	urls map[string]*domain.Mapping
	seq  uint64
}

func NewURLMemoryRepository() *URLMemoryRepository {
	return &URLMemoryRepository{urls: make(map[string]*domain.Mapping)}
}

func (r *URLMemoryRepository) Put(_ context.Context, m *domain.Mapping) error {
	c := m.Clone()

	r.mu.Lock()
	r.urls[c.ShortCode] = c
	r.mu.Unlock()
	return nil
}

func (r *URLMemoryRepository) Get(_ context.Context, code string) (*domain.Mapping, error) {
	r.mu.RLock()
	m, ok := r.urls[code]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m.Clone(), nil
}

func (r *URLMemoryRepository) Exists(_ context.Context, code string) (bool, error) {
	r.mu.RLock()
	_, ok := r.urls[code]
	r.mu.RUnlock()
	return ok, nil
}

// Deactivate reports whether this call flipped the mapping from active.
func (r *URLMemoryRepository) Deactivate(_ context.Context, code string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.urls[code]
	if !ok || !m.IsActive {
		return false, nil
	}
	m.IsActive = false
	return true, nil
}

func (r *URLMemoryRepository) All(_ context.Context) ([]domain.Mapping, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Mapping, 0, len(r.urls))
	for _, m := range r.urls {
		out = append(out, *m.Clone())
	}
	return out, nil
}

func (r *URLMemoryRepository) NextID(_ context.Context) (uint64, error) {
	r.mu.Lock()
	r.seq++
	id := r.seq
	r.mu.Unlock()
	return id, nil
}
