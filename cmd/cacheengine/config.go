package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// processConfig holds the process-level configuration read from the
// environment (and optionally a .env file). It is distinct from
// cache.Config, which the engine accepts as a plain struct built from
// these values -- the library itself never reads the environment.
type processConfig struct {
	RedisHost     string `env:"CACHE_REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort     int    `env:"CACHE_REDIS_PORT" envDefault:"6379"`
	RedisUsername string `env:"CACHE_REDIS_USERNAME"`
	RedisPassword string `env:"CACHE_REDIS_PASSWORD"`
	RedisDatabase int    `env:"CACHE_REDIS_DATABASE" envDefault:"0"`
	RedisUseTLS   bool   `env:"CACHE_REDIS_USE_TLS" envDefault:"false"`

	TraderID         string `env:"CACHE_TRADER_ID" envDefault:"TRADER-001"`
	UseTraderPrefix  bool   `env:"CACHE_USE_TRADER_PREFIX" envDefault:"true"`
	UseInstanceID    bool   `env:"CACHE_USE_INSTANCE_ID" envDefault:"false"`
	BufferIntervalMS int    `env:"CACHE_BUFFER_INTERVAL_MS" envDefault:"0"`
	Encoding         string `env:"CACHE_ENCODING" envDefault:"msgpack"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
}

// loadProcessConfig reads .env (if present) then the environment.
func loadProcessConfig() (*processConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using environment variables only")
	}

	cfg := &processConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing process config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating process config: %w", err)
	}
	return cfg, nil
}

func (c *processConfig) validate() error {
	if c.TraderID == "" {
		return fmt.Errorf("CACHE_TRADER_ID is required")
	}
	if c.RedisPort < 1 || c.RedisPort > 65535 {
		return fmt.Errorf("CACHE_REDIS_PORT must be a valid port, got %d", c.RedisPort)
	}
	if c.BufferIntervalMS < 0 {
		return fmt.Errorf("CACHE_BUFFER_INTERVAL_MS must be >= 0, got %d", c.BufferIntervalMS)
	}
	switch c.Encoding {
	case "msgpack", "json":
	default:
		return fmt.Errorf("CACHE_ENCODING must be msgpack or json, got %q", c.Encoding)
	}
	return nil
}
