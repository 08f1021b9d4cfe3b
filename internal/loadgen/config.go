package loadgen

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ModeCreate   = "create"
	ModeRedirect = "redirect"
	ModeLookup   = "lookup"
	ModeMixed    = "mixed"
)

type Config struct {
	BaseURL   string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	SeedCount int    `env:"SEED_COUNT" envDefault:"10000"`
	// BatchSize must not exceed the server's MAX_BATCH_SIZE.
	BatchSize          int           `env:"SEED_BATCH_SIZE" envDefault:"100"`
	SeedWorkers        int           `env:"SEED_WORKERS" envDefault:"0"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
	Rate               int           `env:"RATE" envDefault:"1000"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	CreateRatio        float64       `env:"CREATE_RATIO" envDefault:"0.1"`
	Mode               string        `env:"BENCH_TYPE" envDefault:"mixed"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	Timeout            time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NeedsSeed reports whether the mode reads existing codes.
func (c *Config) NeedsSeed() bool {
	return c.Mode != ModeCreate
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeCreate, ModeRedirect, ModeLookup, ModeMixed:
	default:
		return fmt.Errorf("unknown bench type %q", c.Mode)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", c.Rate)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("seed batch size must be positive, got %d", c.BatchSize)
	}
	if c.CreateRatio < 0 || c.CreateRatio > 1 {
		return fmt.Errorf("create ratio must be within [0, 1], got %v", c.CreateRatio)
	}
	return nil
}
