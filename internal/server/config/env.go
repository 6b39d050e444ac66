package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays the LEARNHUB_* variables that are set. Unset variables
// leave the field alone; a malformed value panics.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
