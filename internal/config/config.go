// Package config loads server settings from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-lighting/internal/errors"
)

// Storage backends for species bounds
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config holds everything the server needs to start
type Config struct {
	GRPCPort        int           `env:"LIGHTING_GRPC_PORT" envDefault:"50051"`
	ShutdownTimeout time.Duration `env:"LIGHTING_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"LIGHTING_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LIGHTING_LOG_FORMAT" envDefault:"text"`

	Storage      string `env:"LIGHTING_STORAGE" envDefault:"memory"`
	SeedDefaults bool   `env:"LIGHTING_SEED_DEFAULTS" envDefault:"true"`

	Redis RedisConfig `envPrefix:"LIGHTING_REDIS_"`
}

// RedisConfig holds the redis connection settings
type RedisConfig struct {
	Addr        string        `env:"ADDR" envDefault:"localhost:6379"`
	MasterName  string        `env:"MASTER_NAME"`
	Sentinels   []string      `env:"SENTINEL_ADDRS" envSeparator:","`
	Password    string        `env:"PASSWORD"`
	DB          int           `env:"DB" envDefault:"0"`
	PoolSize    int           `env:"POOL_SIZE" envDefault:"10"`
	UseTLS      bool          `env:"USE_TLS" envDefault:"false"`
	PingTimeout time.Duration `env:"PING_TIMEOUT" envDefault:"5s"`
}

// UsesSentinel reports whether the client should go through Sentinel failover
func (r RedisConfig) UsesSentinel() bool {
	return r.MasterName != ""
}

// Parse reads the environment into a Config without validating it, so
// callers can apply overrides first
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if c.ShutdownTimeout <= 0 {
		vb.Field("ShutdownTimeout", "must be positive")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", errors.GetMessage(err))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		vb.Fieldf("LogFormat", "must be text or json, got %q", c.LogFormat)
	}

	switch c.Storage {
	case StorageMemory:
	case StorageRedis:
		if c.Redis.UsesSentinel() {
			if len(c.Redis.Sentinels) == 0 {
				vb.Field("Redis.Sentinels", "at least one sentinel address is required with a master name")
			}
		} else {
			errors.ValidateRequired("Redis.Addr", c.Redis.Addr, vb)
		}
		if c.Redis.DB < 0 {
			vb.Field("Redis.DB", "must not be negative")
		}
		if c.Redis.PingTimeout <= 0 {
			vb.Field("Redis.PingTimeout", "must be positive")
		}
	default:
		vb.Fieldf("Storage", "must be %s or %s, got %q", StorageMemory, StorageRedis, c.Storage)
	}

	return vb.Build()
}

// ParseLogLevel maps a level name to its slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
}
