package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// parseEnv overlays the LEARNHUB_* variables that are set. Malformed values,
// an unknown cache kind or an unknown theme panic.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}

	validateCacheKind(cfg.CacheKind)
	if !cfg.FallbackTheme.Valid() {
		panic(fmt.Errorf("parse env: %w: %q", preference.ErrInvalidPreference, cfg.FallbackTheme))
	}
}
