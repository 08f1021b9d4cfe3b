package metrics

import (
	"context"
	"log/slog"
	"time"

	"shortlink/internal/config"
)

// Recorder collects HTTP, business and infrastructure metrics and writes them
// to postgres in batches. A disabled Recorder accepts and discards everything.
type Recorder struct {
	enabled  bool
	logger   *slog.Logger
	cfg      *config.MetricsConfig
	http     *Batcher[HTTPMetric]
	business *Batcher[BusinessMetric]
	infra    *Batcher[InfraMetric]
}

func NewRecorder(db Copier, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	r := &Recorder{
		enabled: cfg.Enabled && db != nil,
		logger:  logger,
		cfg:     cfg,
	}
	if !r.enabled {
		return r
	}

	bc := BatcherConfig{
		BufferSize:     cfg.BufferSize,
		FlushThreshold: cfg.FlushThreshold,
		FlushInterval:  time.Duration(cfg.FlushInterval) * time.Millisecond,
	}
	r.http = NewBatcher("http_metrics", bc, CopyWriter(db, "http_metrics", httpColumns, httpRow), logger)
	r.business = NewBatcher("business_metrics", bc, CopyWriter(db, "business_metrics", businessColumns, businessRow), logger)
	r.infra = NewBatcher("infra_metrics", bc, CopyWriter(db, "infra_metrics", infraColumns, infraRow), logger)
	return r
}

func (r *Recorder) Enabled() bool {
	return r.enabled
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.enabled {
		return
	}
	r.http.Add(m)
}

func (r *Recorder) RecordBusiness(t time.Time, name string, value float64, labelsJSON []byte) {
	if !r.enabled {
		return
	}
	r.business.Add(BusinessMetric{
		Time:       t,
		MetricName: name,
		Value:      value,
		Labels:     labelsJSON,
	})
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.enabled {
		return
	}
	r.infra.Add(m)
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.enabled {
		r.logger.Info("metrics recording disabled")
		return
	}

	r.http.Start(ctx)
	r.business.Start(ctx)
	r.infra.Start(ctx)

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

func (r *Recorder) Close() {
	if !r.enabled {
		return
	}
	r.http.Close()
	r.business.Close()
	r.infra.Close()
}
