package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"
	"net/netip"

	"github.com/labstack/echo/v4"
)

const (
	pprofAuthHeader = "X-Pprof-Secret"
	PprofPrefix     = "/debug/pprof"
)

var errPprofUnauthorized = map[string]string{"error": "unauthorized"}

// PprofAuth guards the profiling endpoints. With a secret configured the
// X-Pprof-Secret header must match it; without one only loopback clients
// are let through.
func PprofAuth(secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				if !isLoopback(c.RealIP()) {
					return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
				}
				return next(c)
			}
			provided := c.Request().Header.Get(pprofAuthHeader)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

func isLoopback(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	return err == nil && addr.Unmap().IsLoopback()
}

// RegisterPprof mounts the runtime profiles under PprofPrefix behind PprofAuth.
func RegisterPprof(e *echo.Echo, secret string) *echo.Group {
	g := e.Group(PprofPrefix, PprofAuth(secret))
	g.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	g.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	g.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	g.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.POST("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	g.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
	return g
}
