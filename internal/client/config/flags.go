package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/cache"
	"github.com/dmitrijs2005/learnhub/internal/flagx"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   address and port of the backend server
//	-i int      online check interval in seconds
//	-w int      timeout of a single server call in seconds
//	-d string   local SQLite database path
//	-k string   theme cache kind: sqlite | file | memory
//	-f string   theme cache file for -k file
//	-t string   theme used when nothing is cached: dark | light
//
// Unknown values for -k and -t panic, like malformed flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-w", "-d", "-k", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	remoteTimeout := fs.Int("w", int(cfg.RemoteTimeout.Seconds()), "server call timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.CacheKind, "k", cfg.CacheKind, "theme cache kind (sqlite|file|memory)")
	fs.StringVar(&cfg.CacheFile, "f", cfg.CacheFile, "theme cache file for -k file")
	fallback := fs.String("t", cfg.FallbackTheme.String(), "theme used when nothing is cached (dark|light)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	validateCacheKind(cfg.CacheKind)

	theme, err := preference.Parse(*fallback)
	if err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.RemoteTimeout = time.Duration(*remoteTimeout) * time.Second
	cfg.FallbackTheme = theme
}

func validateCacheKind(kind string) {
	switch kind {
	case cache.KindSQLite, cache.KindFile, cache.KindMemory:
	default:
		panic(fmt.Sprintf("unknown cache kind %q", kind))
	}
}
