package analytics

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"shortlink/internal/domain"
)

type ClickRecorder interface {
	RecordClick(ctx context.Context, click domain.Click)
}

type DispatcherConfig struct {
	QueueSize int
	Workers   int
	// Timeout bounds a single RecordClick call.
	Timeout time.Duration
}

// Dispatcher runs RecordClick off the request path. Enqueue never blocks;
// clicks are dropped when the queue is full or the dispatcher is closed.
type Dispatcher struct {
	rec     ClickRecorder
	logger  *slog.Logger
	queue   chan domain.Click
	workers int
	timeout time.Duration
	dropped atomic.Int64

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

func NewDispatcher(rec ClickRecorder, cfg DispatcherConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		rec:     rec,
		logger:  logger,
		queue:   make(chan domain.Click, max(1, cfg.QueueSize)),
		workers: max(1, cfg.Workers),
		timeout: cfg.Timeout,
	}
}

// Start launches the workers. Per-click contexts derive from ctx but outlive
// its cancellation so Close can drain the queue.
func (d *Dispatcher) Start(ctx context.Context) {
	base := context.WithoutCancel(ctx)
	d.wg.Add(d.workers)
	for range d.workers {
		go d.work(base)
	}
	d.logger.Info("click dispatcher started",
		slog.Int("workers", d.workers),
		slog.Int("queue_size", cap(d.queue)))
}

func (d *Dispatcher) Enqueue(click domain.Click) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped.Add(1)
		return false
	}

	select {
	case d.queue <- click:
		return true
	default:
		d.dropped.Add(1)
		d.logger.Warn("click queue full, dropping click", slog.String("short_code", click.ShortCode))
		return false
	}
}

func (d *Dispatcher) Dropped() int64 {
	return d.dropped.Load()
}

// Close stops accepting clicks and waits until the queued ones are recorded.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) work(ctx context.Context) {
	defer d.wg.Done()
	for click := range d.queue {
		d.record(ctx, click)
	}
}

func (d *Dispatcher) record(ctx context.Context, click domain.Click) {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	d.rec.RecordClick(ctx, click)
}
