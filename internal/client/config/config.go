package config

import (
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/cache"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// Config holds runtime settings for the LearnHub CLI.
//
// DatabasePath is the SQLite file holding login metadata and, for the
// sqlite cache kind, the cached theme. CacheFile is only used by the file
// cache kind. Paths may start with "~".
type Config struct {
	ServerEndpointAddr  string                `env:"LEARNHUB_SERVER_ADDR"`
	OnlineCheckInterval time.Duration         `env:"LEARNHUB_ONLINE_CHECK_INTERVAL"`
	RemoteTimeout       time.Duration         `env:"LEARNHUB_REMOTE_TIMEOUT"`
	DatabasePath        string                `env:"LEARNHUB_DB_PATH"`
	CacheKind           string                `env:"LEARNHUB_CACHE_KIND"`
	CacheFile           string                `env:"LEARNHUB_CACHE_FILE"`
	FallbackTheme       preference.Preference `env:"LEARNHUB_FALLBACK_THEME"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.RemoteTimeout = 5 * time.Second
	c.DatabasePath = "~/.learnhub/learnhub.db"
	c.CacheKind = cache.KindSQLite
	c.CacheFile = "~/.learnhub/preferences.toml"
	c.FallbackTheme = preference.Fallback
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), LEARNHUB_* environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
