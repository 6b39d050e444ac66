package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/learnhub/internal/flagx"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	"github.com/dmitrijs2005/learnhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations
// accept strings like "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RemoteTimeout       timex.Duration `json:"remote_timeout"`
	DatabasePath        string         `json:"database_path"`
	CacheKind           string         `json:"cache_kind"`
	CacheFile           string         `json:"cache_file"`
	FallbackTheme       string         `json:"fallback_theme"`
}

// parseJson overlays Config with the file named by -c/-config. Keys missing
// from the file keep their current value. Read, unmarshal and validation
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ServerEndpointAddr, jc.ServerEndpointAddr)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.CacheFile, jc.CacheFile)

	if jc.CacheKind != "" {
		validateCacheKind(jc.CacheKind)
		cfg.CacheKind = jc.CacheKind
	}
	if jc.FallbackTheme != "" {
		theme, err := preference.Parse(jc.FallbackTheme)
		if err != nil {
			panic(err)
		}
		cfg.FallbackTheme = theme
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RemoteTimeout.Duration > 0 {
		cfg.RemoteTimeout = jc.RemoteTimeout.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
