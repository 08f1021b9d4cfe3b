package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// MaxURLLength is the longest original URL any backend can store.
const MaxURLLength = 2048

const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	App        AppConfig
	Store      StoreConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Analytics  AnalyticsConfig
	Metrics    MetricsConfig
	Validation ValidationConfig
	RateLimit  RateLimitConfig
	Pprof      PprofConfig
	Log        LogConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"localhost"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections  int           `env:"SERVER_MAX_CONNECTIONS" envDefault:"10000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type AppConfig struct {
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	// CodeLength of generated short codes, 1..10.
	CodeLength   int    `env:"CODE_LENGTH" envDefault:"6"`
	CodeStrategy string `env:"CODE_STRATEGY" envDefault:"random"`
	// DefaultExpirationDays applies when a request carries no positive TTL. 0 disables expiration.
	DefaultExpirationDays int           `env:"DEFAULT_EXPIRATION_DAYS" envDefault:"365"`
	MaxAttempts           int           `env:"MAX_CREATE_ATTEMPTS" envDefault:"10"`
	CleanupInterval       time.Duration `env:"CLEANUP_INTERVAL" envDefault:"1h"`
	TimeZone              string        `env:"TIME_ZONE" envDefault:"Local"`
}

type StoreConfig struct {
	Backend string `env:"STORE_BACKEND" envDefault:"memory"`
}

type DatabaseConfig struct {
	Host           string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port           int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User           string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password       string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName         string `env:"POSTGRES_DB" envDefault:"shortlink"`
	SSLMode        string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"20"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	MigrateOnStart bool   `env:"POSTGRES_MIGRATE" envDefault:"true"`
}

func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

type CacheConfig struct {
	Enabled     bool          `env:"CACHE_ENABLED" envDefault:"true"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"10m"`
}

type AnalyticsConfig struct {
	QueueSize         int           `env:"ANALYTICS_QUEUE_SIZE" envDefault:"10000"`
	Workers           int           `env:"ANALYTICS_WORKERS" envDefault:"4"`
	Timeout           time.Duration `env:"ANALYTICS_TIMEOUT" envDefault:"2s"`
	ClickLogEnabled   bool          `env:"ANALYTICS_CLICK_LOG" envDefault:"true"`
	ClickStreamMaxLen int64         `env:"ANALYTICS_CLICK_STREAM_MAXLEN" envDefault:"100000"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
	// FlushInterval in milliseconds.
	FlushInterval int           `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	InfraInterval time.Duration `env:"METRICS_INFRA_INTERVAL" envDefault:"10s"`
}

type ValidationConfig struct {
	MaxURLLength       int    `env:"MAX_URL_LENGTH" envDefault:"2048"`
	MaxBatchSize       int    `env:"MAX_BATCH_SIZE" envDefault:"100"`
	RequireHost        bool   `env:"URL_REQUIRE_HOST" envDefault:"false"`
	AllowPrivateIPs    bool   `env:"ALLOW_PRIVATE_IPS" envDefault:"true"`
	MaxRequestBodySize string `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1M"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type PprofConfig struct {
	Enabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	Secret  string `env:"PPROF_SECRET"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
	// File enables rotation through lumberjack when set; logs still go to stdout.
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
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

// Location resolves TIME_ZONE, used for the calendar-day boundaries of the summary.
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

func (c *Config) validate() error {
	switch c.Store.Backend {
	case BackendMemory, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.App.CodeLength < 1 || c.App.CodeLength > 10 {
		return fmt.Errorf("code length must be between 1 and 10, got %d", c.App.CodeLength)
	}
	switch c.App.CodeStrategy {
	case "random", "sequential":
	default:
		return fmt.Errorf("unknown code strategy %q", c.App.CodeStrategy)
	}
	if c.App.MaxAttempts < 1 {
		return fmt.Errorf("max create attempts must be positive, got %d", c.App.MaxAttempts)
	}
	if c.App.DefaultExpirationDays < 0 {
		return fmt.Errorf("default expiration days must not be negative, got %d", c.App.DefaultExpirationDays)
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid time zone: %w", err)
	}
	if c.Validation.MaxURLLength < 1 || c.Validation.MaxURLLength > MaxURLLength {
		return fmt.Errorf("max url length must be between 1 and %d, got %d", MaxURLLength, c.Validation.MaxURLLength)
	}
	return nil
}
