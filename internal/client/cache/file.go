package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dmitrijs2005/learnhub/internal/filex"
	"github.com/dmitrijs2005/learnhub/internal/logging"
	"github.com/dmitrijs2005/learnhub/internal/preference"
	toml "github.com/pelletier/go-toml/v2"
)

// FileCache keeps preferences as a flat TOML table:
//
//	learnhub_theme = "light"
type FileCache struct {
	mu     sync.Mutex
	path   string
	logger logging.Logger
}

// NewFileCache resolves path ("~" is expanded) and creates its directory.
func NewFileCache(path string, l logging.Logger) (*FileCache, error) {
	resolved, err := filex.EnsureParentDir(path)
	if err != nil {
		return nil, fmt.Errorf("file cache: %w", err)
	}
	return &FileCache{path: resolved, logger: l.With("module", "file_cache")}, nil
}

func (c *FileCache) load() (map[string]string, error) {
	values := map[string]string{}

	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return values, err
	}

	if err := toml.Unmarshal(raw, &values); err != nil {
		return map[string]string{}, err
	}
	return values, nil
}

func (c *FileCache) Get(key string) (preference.Preference, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	values, err := c.load()
	if err != nil {
		c.logger.Warn(context.Background(), ErrCacheReadCorrupt.Error(), "path", c.path, "error", err)
		return "", false
	}

	raw, ok := values[key]
	if !ok {
		return "", false
	}

	p, err := preference.Parse(raw)
	if err != nil {
		c.logger.Warn(context.Background(), ErrCacheReadCorrupt.Error(), "key", key, "error", err)
		return "", false
	}
	return p, true
}

// Set rewrites the whole file through a temp file and rename. A corrupt
// file is replaced rather than merged.
func (c *FileCache) Set(key string, p preference.Preference) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.write(key, p); err != nil {
		c.logger.Error(context.Background(), "cache write failed", "path", c.path, "error", err)
	}
}

func (c *FileCache) write(key string, p preference.Preference) error {
	values, err := c.load()
	if err != nil {
		values = map[string]string{}
	}
	values[key] = p.String()

	out, err := toml.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), ".learnhub-*.toml")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(out); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}
