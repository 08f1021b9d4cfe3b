package middleware

import (
	"crypto/subtle"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"shortlink/internal/config"
	"shortlink/internal/logger"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

const bypassHeader = "X-Rate-Limit-Bypass"

var rateLimiterInternalErr = map[string]string{"error": "internal server error"}

// RateLimit limits requests per client IP with a token bucket. A request
// carrying the configured bypass secret is never limited. With cfg.Enabled
// false the middleware passes everything through.
func RateLimit(cfg *config.RateLimitConfig, base *slog.Logger) echo.MiddlewareFunc {
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	retryAfter := retryAfterSeconds(cfg.RPS)
	exceeded := rateLimitResponse{Error: "rate limit exceeded", RetryAfter: retryAfter}
	retryHeader := strconv.Itoa(retryAfter)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.FromContext(c.Request().Context(), base).Warn("rate limit exceeded",
				slog.String("ip", identifier),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", retryHeader)
			return c.JSON(http.StatusTooManyRequests, exceeded)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.FromContext(c.Request().Context(), base).Error("rate limiter error",
				slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

// retryAfterSeconds is the time one token takes to refill, at least 1s.
func retryAfterSeconds(rps float64) int {
	if rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/rps)))
}
