package loadgen

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type batchRequest struct {
	URLs []string `json:"urls"`
}

type batchResponse struct {
	URLs []struct {
		ShortCode string `json:"short_code"`
	} `json:"urls"`
}

type Seeder struct {
	client  *http.Client
	baseURL string
	bypass  string
	batch   int
	workers int
	logger  *slog.Logger
}

func NewSeeder(cfg *Config, logger *slog.Logger) *Seeder {
	workers := cfg.SeedWorkers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	return &Seeder{
		client: &http.Client{
			Timeout: cfg.SeedTimeout,
			Transport: &http.Transport{
				TLSClientConfig:     &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}, //nolint:gosec // test targets use self-signed certs
				MaxIdleConns:        workers * 2,
				MaxIdleConnsPerHost: workers * 2,
				IdleConnTimeout:     90 * time.Second,
				ForceAttemptHTTP2:   true,
			},
		},
		baseURL: cfg.BaseURL,
		bypass:  cfg.RateLimitBypass,
		batch:   cfg.BatchSize,
		workers: workers,
		logger:  logger,
	}
}

// Seed creates count mappings through the batch endpoint and returns their
// codes in creation order.
func (s *Seeder) Seed(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	s.logger.Info("seeding urls",
		slog.Int("count", count),
		slog.Int("batch_size", s.batch),
		slog.Int("workers", s.workers))

	numBatches := (count + s.batch - 1) / s.batch
	results := make([][]string, numBatches)
	var progress atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range numBatches {
		start := i * s.batch
		size := min(s.batch, count-start)

		g.Go(func() error {
			codes, err := s.createBatch(gctx, start, size)
			if err != nil {
				return fmt.Errorf("failed to create batch at %d: %w", start, err)
			}
			results[i] = codes
			s.logger.Debug("seed progress",
				slog.Int64("done", progress.Add(int64(len(codes)))),
				slog.Int("total", count))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	codes := make([]string, 0, count)
	for _, batch := range results {
		codes = append(codes, batch...)
	}
	s.logger.Info("seeding complete", slog.Int("codes", len(codes)))
	return codes, nil
}

func (s *Seeder) createBatch(ctx context.Context, start, size int) ([]string, error) {
	urls := make([]string, size)
	for i := range size {
		urls[i] = fmt.Sprintf("https://example.com/seed/%d", start+i)
	}

	body, err := json.Marshal(batchRequest{URLs: urls})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1/urls/batch", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.bypass != "" {
		req.Header.Set(bypassHeader, s.bypass)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result batchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	codes := make([]string, len(result.URLs))
	for i, u := range result.URLs {
		codes[i] = u.ShortCode
	}
	return codes, nil
}
