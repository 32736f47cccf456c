package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	LogLevel  string `env:"FORSALE_LOG_LEVEL" envDefault:"warn"`  // debug, info, warn, error
	LogFormat string `env:"FORSALE_LOG_FORMAT" envDefault:"text"` // text or json
	Catalog   string `env:"FORSALE_CATALOG"`                      // optional TOML listings posted at startup
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate lower-cases the log settings before checking them.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid FORSALE_LOG_LEVEL %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid FORSALE_LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
