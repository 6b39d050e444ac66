package config

import (
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/cache"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
	assert.Equal(t, 5*time.Second, c.RemoteTimeout)
	assert.Equal(t, cache.KindSQLite, c.CacheKind)
	assert.Equal(t, preference.Dark, c.FallbackTheme)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 3*time.Second, cfg.OnlineCheckInterval)
	assert.Equal(t, preference.Dark, cfg.FallbackTheme)
}
