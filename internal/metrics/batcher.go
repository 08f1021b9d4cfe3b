package metrics

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const drainTimeout = 5 * time.Second

// Writer persists one batch. Batches are never retried.
type Writer[T any] func(ctx context.Context, batch []T) error

type BatcherConfig struct {
	BufferSize     int
	FlushThreshold int
	FlushInterval  time.Duration
}

// Batcher buffers items in a bounded channel and hands them to a Writer in
// batches, either when FlushThreshold items are pending or every
// FlushInterval. Add never blocks: items are dropped when the buffer is full.
type Batcher[T any] struct {
	name         string
	logger       *slog.Logger
	write        Writer[T]
	ch           chan T
	threshold    int
	interval     time.Duration
	dropped      atomic.Int64
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewBatcher[T any](name string, cfg BatcherConfig, write Writer[T], logger *slog.Logger) *Batcher[T] {
	interval := cfg.FlushInterval
	if interval <= 0 {
		interval = time.Second
	}
	return &Batcher[T]{
		name:       name,
		logger:     logger.With(slog.String("batcher", name)),
		write:      write,
		ch:         make(chan T, max(1, cfg.BufferSize)),
		threshold:  max(1, cfg.FlushThreshold),
		interval:   interval,
		shutdownCh: make(chan struct{}),
	}
}

// Add enqueues item and reports whether it was accepted.
func (b *Batcher[T]) Add(item T) bool {
	select {
	case b.ch <- item:
		return true
	default:
		b.dropped.Add(1)
		b.logger.Warn("buffer full, dropping item")
		return false
	}
}

// Dropped returns the number of items rejected by Add so far.
func (b *Batcher[T]) Dropped() int64 {
	return b.dropped.Load()
}

func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Close stops the flush loop after writing everything still buffered.
func (b *Batcher[T]) Close() {
	b.shutdownOnce.Do(func() {
		close(b.shutdownCh)
		b.wg.Wait()
	})
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.threshold)

	for {
		select {
		case <-ctx.Done():
			b.drainAndFlush(batch)
			return
		case <-b.shutdownCh:
			b.drainAndFlush(batch)
			return
		case item := <-b.ch:
			batch = append(batch, item)
			if len(batch) >= b.threshold {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				b.flush(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

func (b *Batcher[T]) drainAndFlush(batch []T) {
	for {
		select {
		case item := <-b.ch:
			batch = append(batch, item)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
				b.flush(ctx, batch)
				cancel()
			}
			return
		}
	}
}

func (b *Batcher[T]) flush(ctx context.Context, batch []T) {
	if err := b.write(ctx, batch); err != nil {
		b.logger.Error("failed to write batch",
			slog.Int("size", len(batch)),
			slog.String("error", err.Error()))
	}
}
