// Package cache is the device-local store of the theme preference. Every
// implementation is synchronous and never fails observably: unreadable or
// unparsable values read as absent and write failures are logged.
package cache

import (
	"errors"

	"github.com/dmitrijs2005/learnhub/internal/preference"
)

// ErrCacheReadCorrupt marks a stored value that could not be read back as a
// preference. It is only ever logged.
var ErrCacheReadCorrupt = errors.New("cache read corrupt")

type Cache interface {
	Get(key string) (preference.Preference, bool)
	Set(key string, p preference.Preference)
}

const (
	KindSQLite = "sqlite"
	KindFile   = "file"
	KindMemory = "memory"
)
