package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"shortlink/internal/loadgen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("load test failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := loadgen.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var codes []string
	if cfg.NeedsSeed() {
		codes, err = loadgen.NewSeeder(cfg, logger).Seed(ctx, cfg.SeedCount)
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	tr, err := loadgen.Targeter(cfg, codes)
	if err != nil {
		return err
	}

	return loadgen.Attack(ctx, cfg, tr, os.Stdout, logger)
}
