package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"shortlink/internal/logger"
)

// RequestLogger tags every request with an id, stores a request-scoped logger
// in the request context and writes one access record when it completes. An
// incoming X-Request-ID is reused.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := req.Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = logger.NewRequestID()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)

			ctx := logger.WithRequestID(req.Context(), base, id)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)
			if err != nil {
				// Let echo write the error response so the status is final.
				c.Error(err)
			}

			status := c.Response().Status
			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("route", c.Path()),
				slog.Int("status", status),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("size", c.Response().Size),
				slog.String("ip", c.RealIP()),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.FromContext(ctx, base).LogAttrs(ctx, level, "http request", attrs...)

			return nil
		}
	}
}
