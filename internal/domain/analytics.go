package domain

import "time"

// Click is a single resolved redirect. All client fields are optional.
type Click struct {
	ShortCode string    `json:"short_code"`
	Time      time.Time `json:"time"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referer   string    `json:"referer,omitempty"`
}

// Analytics is the per-code click counter together with a copy of the
// mapping metadata taken when the code was created.
type Analytics struct {
	ShortCode      string     `json:"short_code"`
	OriginalURL    string     `json:"original_url"`
	ShortURL       string     `json:"short_url"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	IsActive       bool       `json:"is_active"`
	ClickCount     int64      `json:"click_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`

	// Day is the calendar day (2006-01-02) DayClicks refers to.
	Day       string `json:"-"`
	DayClicks int64  `json:"-"`
}

type Summary struct {
	TotalURLs   int64       `json:"total_urls"`
	TotalClicks int64       `json:"total_clicks"`
	TodayURLs   int64       `json:"today_urls"`
	TodayClicks int64       `json:"today_clicks"`
	TopURLs     []Analytics `json:"top_urls"`
	RecentURLs  []Analytics `json:"recent_urls"`
	LastUpdated time.Time   `json:"last_updated"`
}

// ClientInfo is the optional request metadata attached to a click.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	Referer   string
}
