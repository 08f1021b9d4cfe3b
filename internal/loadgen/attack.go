package loadgen

import (
	"context"
	"crypto/tls"
	"io"
	"log/slog"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// Attack runs tr at cfg.Rate for cfg.Duration and writes a text report to out.
// Cancelling ctx stops the attack early; the partial report is still written.
func Attack(ctx context.Context, cfg *Config, tr vegeta.Targeter, out io.Writer, logger *slog.Logger) error {
	attacker := vegeta.NewAttacker(
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(cfg.Timeout),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}), //nolint:gosec // test targets use self-signed certs
	)

	logger.Info("starting attack",
		slog.String("mode", cfg.Mode),
		slog.Int("rate", cfg.Rate),
		slog.Duration("duration", cfg.Duration))

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			attacker.Stop()
		case <-done:
		}
	}()

	var m vegeta.Metrics
	started := time.Now()
	for res := range attacker.Attack(tr, vegeta.Rate{Freq: cfg.Rate, Per: time.Second}, cfg.Duration, cfg.Mode) {
		m.Add(res)
	}
	m.Close()

	logger.Info("attack finished",
		slog.Duration("elapsed", time.Since(started)),
		slog.Uint64("requests", m.Requests),
		slog.Float64("success", m.Success))

	return vegeta.NewTextReporter(&m).Report(out)
}
