package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "INVENTORY"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv            = "INVENTORY_APP_ENV"
	EnvPort              = "INVENTORY_APP_PORT"
	EnvLogLevel          = "INVENTORY_LOG_LEVEL"
	EnvLogFormat         = "INVENTORY_LOG_FORMAT"
	EnvRedisURL          = "INVENTORY_REDIS_URL"
	EnvRedisAddr         = "INVENTORY_REDIS_ADDR"
	EnvIdempotencyTTL    = "INVENTORY_IDEMPOTENCY_TTL"
	EnvMetricsEnabled    = "INVENTORY_METRICS_ENABLED"
	EnvSeedSampleData    = "INVENTORY_SEED_SAMPLE_DATA"
	EnvCORSAllowedOrigin = "INVENTORY_CORS_ALLOWED_ORIGINS"
)

type Config struct {
	App         AppConfig
	HTTP        HTTPConfig
	Redis       RedisConfig
	Idempotency IdempotencyConfig
	Metrics     MetricsConfig
	Seed        SeedConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"INVENTORY_APP_ENV" required:"true"`
	Port         string `envconfig:"INVENTORY_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"INVENTORY_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"INVENTORY_LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"INVENTORY_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `envconfig:"INVENTORY_HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"INVENTORY_HTTP_WRITE_TIMEOUT" default:"10s"`
	ShutdownTimeout time.Duration `envconfig:"INVENTORY_HTTP_SHUTDOWN_TIMEOUT" default:"15s"`
	AllowedOrigins  []string      `envconfig:"INVENTORY_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5000"`
}

// RedisConfig is optional: leaving both URL and Address empty disables
// idempotent replay of order requests.
type RedisConfig struct {
	URL          string        `envconfig:"INVENTORY_REDIS_URL"`
	Address      string        `envconfig:"INVENTORY_REDIS_ADDR"`
	Password     string        `envconfig:"INVENTORY_REDIS_PASSWORD"`
	DB           int           `envconfig:"INVENTORY_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"INVENTORY_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"INVENTORY_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"INVENTORY_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"INVENTORY_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"INVENTORY_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type IdempotencyConfig struct {
	TTL time.Duration `envconfig:"INVENTORY_IDEMPOTENCY_TTL" default:"24h"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"INVENTORY_METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"INVENTORY_METRICS_PATH" default:"/metrics"`
}

type SeedConfig struct {
	SampleData bool `envconfig:"INVENTORY_SEED_SAMPLE_DATA" default:"false"`
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.App.Port) == "" {
		return fmt.Errorf("%s must not be empty", EnvPort)
	}
	if c.Idempotency.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvIdempotencyTTL)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics path %q must start with /", c.Metrics.Path)
	}
	return nil
}
