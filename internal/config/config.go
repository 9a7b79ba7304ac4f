// Package config loads client configuration from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings.
type Config struct {
	// APIBaseURL is the root of the remote recipe service.
	APIBaseURL string `env:"ONECLICK_API_URL" envDefault:"http://localhost:8080/api"`
	// HTTPTimeout bounds every request to the service.
	HTTPTimeout time.Duration `env:"ONECLICK_HTTP_TIMEOUT" envDefault:"30s"`
	// LogFile receives log output so the TUI stays clean. "stderr"
	// logs to the console instead.
	LogFile string `env:"ONECLICK_LOG_FILE" envDefault:".oneclick/oneclick.log"`
}

// Load reads the .env file (if any) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
