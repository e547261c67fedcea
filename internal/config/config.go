package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	CacheBackendLocal = "local"
	CacheBackendRedis = "redis"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// AllowedOrigins are the browser origins passing the CORS check.
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// tracing, api key comes from HONEYCOMB_API_KEY
	HoneycombEnabled bool `toml:"honeycomb_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	Analysis Analysis `toml:"analysis"`
}

type Analysis struct {
	// CacheBackend is either "local" (in process) or "redis" (shared between instances).
	CacheBackend         string `toml:"cache_backend"`
	// CacheSizeMB of the local cache, raised to cache.MinLocalSizeMB when smaller.
	CacheSizeMB          int    `toml:"cache_size_mb"`
	CacheTTLSeconds      int    `toml:"cache_ttl_seconds"`
	RateLimitPerMin      int    `toml:"rate_limit_per_min"`
	ReportMissingMuscles bool   `toml:"report_missing_muscles"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development", "ddev", "dockerdev":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given env,
// with defaults applied and required fields checked.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return FromToml(&t, env)
}

// Parse is Load for config already in memory.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return FromToml(&t, env)
}

func FromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.setDefaults(env)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config for env [%s]: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) setDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"http://localhost:8080"}
	}
	if c.Analysis.CacheBackend == "" {
		c.Analysis.CacheBackend = CacheBackendLocal
	}
	if c.Analysis.CacheSizeMB == 0 {
		c.Analysis.CacheSizeMB = 16
	}
	if c.Analysis.CacheTTLSeconds == 0 {
		c.Analysis.CacheTTLSeconds = 600
	}
	if c.Analysis.RateLimitPerMin == 0 {
		c.Analysis.RateLimitPerMin = 30
	}
}

func (c *Config) Validate() error {
	switch {
	case c.Port <= 0:
		return errors.New("port must be set")
	case c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "":
		return errors.New("postgres host, port and db name are required")
	case c.RedisHost == "" || c.RedisPort == "":
		return errors.New("redis host and port are required")
	case c.PrometheusMetricsPort == "":
		return errors.New("prometheus metrics port is required")
	}

	switch c.Analysis.CacheBackend {
	case CacheBackendLocal, CacheBackendRedis:
	default:
		return fmt.Errorf("unknown analysis cache backend: %s", c.Analysis.CacheBackend)
	}
	if c.Analysis.CacheSizeMB < 0 || c.Analysis.CacheTTLSeconds < 0 || c.Analysis.RateLimitPerMin < 0 {
		return errors.New("analysis cache size, ttl and rate limit cannot be negative")
	}
	return nil
}
