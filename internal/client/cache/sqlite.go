package cache

import (
	"context"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/preference"
)

const sqliteOpTimeout = 2 * time.Second

// SQLiteCache keeps the preference in the metadata table of the local
// database.
type SQLiteCache struct {
	repo   metadata.Repository
	logger logging.Logger
}

func NewSQLiteCache(repo metadata.Repository, l logging.Logger) *SQLiteCache {
	return &SQLiteCache{repo: repo, logger: l.With("module", "sqlite_cache")}
}

func (c *SQLiteCache) Get(key string) (preference.Preference, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteOpTimeout)
	defer cancel()

	raw, err := c.repo.Get(ctx, key)
	if err != nil {
		c.logger.Warn(ctx, ErrCacheReadCorrupt.Error(), "key", key, "error", err)
		return "", false
	}
	if raw == nil {
		return "", false
	}

	p, err := preference.Parse(string(raw))
	if err != nil {
		c.logger.Warn(ctx, ErrCacheReadCorrupt.Error(), "key", key, "error", err)
		return "", false
	}
	return p, true
}

func (c *SQLiteCache) Set(key string, p preference.Preference) {
	ctx, cancel := context.WithTimeout(context.Background(), sqliteOpTimeout)
	defer cancel()

	if err := c.repo.Set(ctx, key, []byte(p)); err != nil {
		c.logger.Error(ctx, "cache write failed", "key", key, "error", err)
	}
}
