package domain

import "time"

// Mapping binds a short code to the URL it redirects to.
type Mapping struct {
	ShortCode   string     `json:"short_code"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

// Expired reports whether the mapping has an expiry at or before now.
func (m *Mapping) Expired(now time.Time) bool {
	return m.ExpiresAt != nil && !now.Before(*m.ExpiresAt)
}

// Accessible reports whether the mapping may be resolved at now.
func (m *Mapping) Accessible(now time.Time) bool {
	return m.IsActive && !m.Expired(now)
}

// Clone returns a copy that shares no memory with m.
func (m *Mapping) Clone() *Mapping {
	c := *m
	if m.ExpiresAt != nil {
		t := *m.ExpiresAt
		c.ExpiresAt = &t
	}
	return &c
}

// ExpirationDays <= 0 selects the configured default.
type CreateURLRequest struct {
	URL            string `json:"url"`
	ExpirationDays int    `json:"expiration_days" validate:"lte=36500"`
}

type CreateURLResponse struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	IsActive    bool       `json:"is_active"`
}

type CreateURLBatchRequest struct {
	URLs           []string `json:"urls"`
	ExpirationDays int      `json:"expiration_days" validate:"lte=36500"`
}

type CreateURLBatchResponse struct {
	URLs []CreateURLResponse `json:"urls"`
}

type ExistsResponse struct {
	ShortCode string `json:"short_code"`
	Exists    bool   `json:"exists"`
}

type ClickCountResponse struct {
	ShortCode  string `json:"short_code"`
	ClickCount int64  `json:"click_count"`
}

type DeactivateResponse struct {
	ShortCode   string `json:"short_code"`
	Deactivated bool   `json:"deactivated"`
}
