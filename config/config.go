// Package config loads client configuration from the environment. The
// backend base URL and storage backend are resolved once at process
// start; nothing re-reads the environment later.
package config

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/servinow/servinow-go/client"
	"github.com/servinow/servinow-go/store"
	"github.com/servinow/servinow-go/utils/logger"
)

const (
	StoreBackendSecure = "secure"
	StoreBackendFile   = "file"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)

type Config struct {
	APIBaseURL  string        `env:"SERVINOW_API_URL, default=http://localhost:8001/api"`
	HTTPTimeout time.Duration `env:"SERVINOW_HTTP_TIMEOUT, default=30s"`
	ServiceName string        `env:"SERVINOW_SERVICE_NAME, default=servinow-client"`
	Env         string        `env:"SERVINOW_ENV, default=development"`
	LogLevel    string        `env:"SERVINOW_LOG_LEVEL, default=info"`

	// StoreBackend picks the session storage variant for the platform
	// this binary targets: secure, file, redis or memory.
	StoreBackend string `env:"SERVINOW_STORE_BACKEND, default=secure"`
	// StorePath is the session file location for the secure and file
	// backends. Defaults under the user config dir.
	StorePath string `env:"SERVINOW_STORE_PATH"`
	// StoreKey is the hex-encoded 32-byte key sealing the secure store.
	StoreKey string `env:"SERVINOW_STORE_KEY"`

	Redis RedisConfig

	CallbackAddr string `env:"SERVINOW_CALLBACK_ADDR, default=127.0.0.1:0"`

	Tracing TracingConfig
}

type RedisConfig struct {
	Addr     string `env:"SERVINOW_REDIS_ADDR, default=localhost:6379"`
	Password string `env:"SERVINOW_REDIS_PASSWORD"`
	DB       int    `env:"SERVINOW_REDIS_DB, default=0"`
}

type TracingConfig struct {
	Enabled    bool    `env:"SERVINOW_TRACING_ENABLED, default=false"`
	Endpoint   string  `env:"SERVINOW_OTLP_ENDPOINT"`
	SampleRate float64 `env:"SERVINOW_TRACE_SAMPLE_RATE, default=1.0"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}

// ClientConfig translates the environment values into the HTTP client's
// configuration.
func (c *Config) ClientConfig() client.Config {
	return client.Config{
		BaseURL:       c.APIBaseURL,
		Timeout:       c.HTTPTimeout,
		ServiceName:   c.ServiceName,
		EnableTracing: c.Tracing.Enabled,
	}
}

// LoggerConfig translates the environment values into the logger's
// configuration.
func (c *Config) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:       c.LogLevel,
		Env:         c.Env,
		ServiceName: c.ServiceName,
	}
}

// NewStore constructs the configured key-value store. This is the single
// place the storage variant is selected.
func (c *Config) NewStore(ctx context.Context) (store.KeyValueStore, error) {
	switch c.StoreBackend {
	case StoreBackendSecure:
		key, err := hex.DecodeString(c.StoreKey)
		if err != nil {
			return nil, fmt.Errorf("SERVINOW_STORE_KEY must be hex: %w", err)
		}
		path, err := c.storePath()
		if err != nil {
			return nil, err
		}
		return store.NewSecureStore(path, key)
	case StoreBackendFile:
		path, err := c.storePath()
		if err != nil {
			return nil, err
		}
		return store.NewFileStore(path)
	case StoreBackendRedis:
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case StoreBackendMemory:
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
	}
}

func (c *Config) storePath() (string, error) {
	if c.StorePath != "" {
		return c.StorePath, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "servinow", "session.db"), nil
}
