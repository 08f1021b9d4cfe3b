package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	"shortlink/internal/analytics"
	"shortlink/internal/cache"
	"shortlink/internal/config"
	"shortlink/internal/handler"
	"shortlink/internal/logger"
	"shortlink/internal/metrics"
	custommiddleware "shortlink/internal/middleware"
	"shortlink/internal/service"
	"shortlink/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx); err != nil {
		bootstrap.Error("application failed", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, logCloser, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logCloser.Close()

	loc, err := cfg.App.Location()
	if err != nil {
		return fmt.Errorf("failed to load time zone: %w", err)
	}

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer st.Close()

	// Background workers only stop through Close so that shutdown drains
	// them in order: dispatcher, click log, metrics.
	workCtx := context.WithoutCancel(ctx)

	recorder := metrics.NewRecorder(st.metricsDB(), &cfg.Metrics, log)
	recorder.Start(workCtx)
	defer recorder.Close()

	var analyticsOpts []analytics.Option
	clickLog := st.clickLog(cfg, log)
	if clickLog != nil {
		clickLog.Start(workCtx)
		defer clickLog.Close()
		analyticsOpts = append(analyticsOpts, analytics.WithClickLog(clickLog))
	}

	analyticsRecorder := analytics.NewRecorder(st.analytics, loc, log, analyticsOpts...)
	dispatcher := analytics.NewDispatcher(analyticsRecorder, analytics.DispatcherConfig{
		QueueSize: cfg.Analytics.QueueSize,
		Workers:   cfg.Analytics.Workers,
		Timeout:   cfg.Analytics.Timeout,
	}, log)
	dispatcher.Start(workCtx)
	defer dispatcher.Close()

	gen, err := newGenerator(&cfg.App, st.urls)
	if err != nil {
		return err
	}

	deps := service.Deps{
		Repo:      st.urls,
		Generator: gen,
		Validator: validation.NewURLValidator(validation.Options{
			MaxLength:       cfg.Validation.MaxURLLength,
			MaxBatchSize:    cfg.Validation.MaxBatchSize,
			RequireHost:     cfg.Validation.RequireHost,
			AllowPrivateIPs: cfg.Validation.AllowPrivateIPs,
		}),
		Analytics: analyticsRecorder,
		Clicks:    dispatcher,
		Recorder:  recorder,
		Logger:    log,
	}

	// The memory backend already answers from process memory.
	var urlCache *cache.URLCache
	if cfg.Cache.Enabled && cfg.Store.Backend != config.BackendMemory {
		urlCache, err = cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer urlCache.Close()
		deps.Cache = urlCache
	}

	urlService := service.NewURLService(deps, service.Config{
		BaseURL:               cfg.App.BaseURL,
		DefaultExpirationDays: cfg.App.DefaultExpirationDays,
		MaxAttempts:           cfg.App.MaxAttempts,
	})

	e := newServer(cfg, log, recorder, handler.New(urlService, log, recorder))

	g, gctx := errgroup.WithContext(ctx)

	httpServer, err := serve(g, cfg, e, log, fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port), nil)
	if err != nil {
		return err
	}

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}
		httpsServer, err = serve(g, cfg, e, log, fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port), &tls.Config{
			MinVersion:       tls.VersionTLS13,
			Certificates:     []tls.Certificate{cert},
			CurvePreferences: []tls.CurveID{tls.X25519},
		})
		if err != nil {
			_ = httpServer.Close()
			return err
		}
	}

	g.Go(func() error {
		urlService.RunCleanup(gctx, cfg.App.CleanupInterval)
		return nil
	})

	g.Go(func() error {
		collectInfraMetrics(gctx, cfg.Metrics.InfraInterval, recorder, st, urlCache, dispatcher, clickLog)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown failed: %w", err))
		}
		if httpsServer != nil {
			if err := httpsServer.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("https server shutdown failed: %w", err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}

func newServer(cfg *config.Config, log *slog.Logger, recorder *metrics.Recorder, h *handler.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.RequestLogger(log))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, "/api/v1/health"))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, log))

	h.Register(e)

	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, cfg.Pprof.Secret)
		log.Info("pprof endpoints enabled", slog.String("path", custommiddleware.PprofPrefix+"/*"))
	}
	return e
}

// serve starts an HTTP server on addr inside g. A non-nil tlsCfg serves TLS.
func serve(g *errgroup.Group, cfg *config.Config, e *echo.Echo, log *slog.Logger, addr string, tlsCfg *tls.Config) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	if cfg.Server.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConnections)
	}

	scheme := "http"
	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
		scheme = "https"
	}

	srv := &http.Server{
		Handler:        e,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: 1 << 14,
	}

	log.Info("starting server",
		slog.String("scheme", scheme),
		slog.String("addr", addr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s server: %w", scheme, err)
		}
		return nil
	})
	return srv, nil
}

type dropCounter interface {
	Dropped() int64
}

func collectInfraMetrics(
	ctx context.Context,
	interval time.Duration,
	recorder *metrics.Recorder,
	st *stores,
	urlCache *cache.URLCache,
	dispatcher *analytics.Dispatcher,
	clickLog dropCounter,
) {
	if !recorder.Enabled() || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			m := metrics.InfraMetric{
				Time:          time.Now(),
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
				ClicksDropped: dispatcher.Dropped(),
			}
			if clickLog != nil {
				m.ClicksDropped += clickLog.Dropped()
			}

			if st.pool != nil {
				stat := st.pool.Stat()
				acquired, idle := int(stat.AcquiredConns()), int(stat.IdleConns())
				total, maxConns := int(stat.TotalConns()), int(stat.MaxConns())
				m.PoolAcquired, m.PoolIdle, m.PoolTotal, m.PoolMax = &acquired, &idle, &total, &maxConns
			}

			if urlCache != nil {
				hits, misses, ratio := urlCache.Stats()
				h, ms := int64(hits), int64(misses)
				m.CacheHits, m.CacheMisses, m.CacheHitRatio = &h, &ms, &ratio
			}

			recorder.RecordInfra(m)
		}
	}
}
