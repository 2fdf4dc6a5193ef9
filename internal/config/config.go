// Package config loads CLI configuration from the environment.
package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the bootstate CLI configuration. All values have working
// defaults; the environment only needs to be set to override them.
type Config struct {
	// Command is the status binary to invoke.
	Command string `env:"COMMAND" envDefault:"rpm-ostree"`
	// MaxAttempts is the total number of status executions before giving up.
	MaxAttempts int `env:"MAX_ATTEMPTS" envDefault:"10"`
	// Pause is the fixed delay between retry attempts.
	Pause time.Duration `env:"PAUSE" envDefault:"1s"`
}

// Load reads configuration from a .env file (if present) and the process
// environment, using the BOOTSTATE_ prefix.
func Load() (*Config, error) {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix: "BOOTSTATE_",
	}); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
