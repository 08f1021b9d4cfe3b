package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/config"
	"shortlink/internal/middleware"
)

type limitedServer struct {
	e *echo.Echo
}

func newLimitedServer(cfg config.RateLimitConfig, logger *slog.Logger) *limitedServer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ExpireMinutes == 0 {
		cfg.ExpireMinutes = 1
	}

	e := echo.New()
	e.Use(middleware.RateLimit(&cfg, logger))
	e.GET("/:code", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "https://example.com")
	})
	return &limitedServer{e: e}
}

// hit sends one redirect request from ip, optionally carrying a bypass secret.
func (s *limitedServer) hit(ip, bypass string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
	req.RemoteAddr = ip + ":40000"
	if bypass != "" {
		req.Header.Set("X-Rate-Limit-Bypass", bypass)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BurstThenLimited(t *testing.T) {
	s := newLimitedServer(config.RateLimitConfig{Enabled: true, RPS: 0.5, Burst: 3}, nil)

	for i := range 3 {
		assert.Equal(t, http.StatusFound, s.hit("198.51.100.1", "").Code, "request %d is within burst", i)
	}
	assert.Equal(t, http.StatusTooManyRequests, s.hit("198.51.100.1", "").Code)
}

func TestRateLimit_DenyResponse(t *testing.T) {
	s := newLimitedServer(config.RateLimitConfig{Enabled: true, RPS: 0.1, Burst: 1}, nil)

	require.Equal(t, http.StatusFound, s.hit("198.51.100.2", "").Code)
	rec := s.hit("198.51.100.2", "")

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "10", rec.Header().Get("Retry-After"))

	var body struct {
		Error      string `json:"error"`
		RetryAfter int    `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body.Error)
	assert.Equal(t, 10, body.RetryAfter)
}

func TestRateLimit_RetryAfterRoundsUp(t *testing.T) {
	tests := []struct {
		rps  float64
		want string
	}{
		{rps: 100, want: "1"},
		{rps: 0.3, want: "4"},
	}

	for _, tt := range tests {
		s := newLimitedServer(config.RateLimitConfig{Enabled: true, RPS: tt.rps, Burst: 1}, nil)

		var limited *httptest.ResponseRecorder
		for range 50 {
			if rec := s.hit("198.51.100.3", ""); rec.Code == http.StatusTooManyRequests {
				limited = rec
				break
			}
		}

		require.NotNil(t, limited, "rps %v", tt.rps)
		assert.Equal(t, tt.want, limited.Header().Get("Retry-After"), "rps %v", tt.rps)
	}
}

func TestRateLimit_PerClientBuckets(t *testing.T) {
	s := newLimitedServer(config.RateLimitConfig{Enabled: true, RPS: 0.1, Burst: 1}, nil)

	assert.Equal(t, http.StatusFound, s.hit("198.51.100.4", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, s.hit("198.51.100.4", "").Code)
	assert.Equal(t, http.StatusFound, s.hit("198.51.100.5", "").Code, "another client keeps its own bucket")
}

func TestRateLimit_Bypass(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		provided string
		want     int
	}{
		{"matching secret", "load-test", "load-test", http.StatusFound},
		{"wrong secret", "load-test", "guess", http.StatusTooManyRequests},
		{"prefix of secret", "load-test", "load", http.StatusTooManyRequests},
		{"no secret configured", "", "anything", http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newLimitedServer(config.RateLimitConfig{
				Enabled:      true,
				RPS:          0.1,
				Burst:        1,
				BypassSecret: tt.secret,
			}, nil)

			var last int
			for range 5 {
				last = s.hit("198.51.100.6", tt.provided).Code
			}
			assert.Equal(t, tt.want, last)
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	s := newLimitedServer(config.RateLimitConfig{Enabled: false, RPS: 0.1, Burst: 1}, nil)

	for i := range 5 {
		assert.Equal(t, http.StatusFound, s.hit("198.51.100.7", "").Code, "request %d", i)
	}
}

func TestRateLimit_LogsDenial(t *testing.T) {
	var buf bytes.Buffer
	s := newLimitedServer(config.RateLimitConfig{Enabled: true, RPS: 0.1, Burst: 1},
		slog.New(slog.NewJSONHandler(&buf, nil)))

	s.hit("198.51.100.8", "")
	s.hit("198.51.100.8", "")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rate limit exceeded", entry["msg"])
	assert.Equal(t, "198.51.100.8", entry["ip"])
	assert.Equal(t, "/:code", entry["path"])
}
