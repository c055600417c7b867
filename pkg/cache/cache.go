// Package cache persists the list of available template types between
// runs so repeated invocations do not hit the network. The cache is
// advisory: any unreadable or stale entry is simply treated as a miss
// and refreshed on the next fetch.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/igno/pkg/errors"
	"github.com/arthur-debert/igno/pkg/logging"
)

// CachedTypes is the on-disk cache entry for the template type list.
type CachedTypes struct {
	FetchedAt int64    `json:"fetched_at"`
	Types     []string `json:"types"`
}

// IsFresh reports whether the entry is still within the given TTL.
func (c CachedTypes) IsFresh(ttl time.Duration) bool {
	fetched := time.Unix(c.FetchedAt, 0)
	age := time.Since(fetched)
	return age >= 0 && age <= ttl
}

// Store reads and writes the cached type list at a fixed path.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the cached type list if the file exists, parses, and is
// fresh under ttl. Any other condition is a cache miss, never an error;
// a clobbered or stale cache self-heals on the next Save.
func (s *Store) Load(ttl time.Duration) ([]string, bool) {
	log := logging.GetLogger("cache")

	data, err := os.ReadFile(s.path)
	if err != nil {
		log.Debug().Str("path", s.path).Err(err).Msg("Cache miss: unreadable")
		return nil, false
	}

	var cached CachedTypes
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Debug().Str("path", s.path).Err(err).Msg("Cache miss: malformed entry")
		return nil, false
	}

	if !cached.IsFresh(ttl) {
		log.Debug().
			Str("path", s.path).
			Int64("fetchedAt", cached.FetchedAt).
			Dur("ttl", ttl).
			Msg("Cache miss: stale entry")
		return nil, false
	}

	log.Debug().Int("types", len(cached.Types)).Msg("Cache hit")
	return cached.Types, true
}

// Save overwrites the cache with the given types, stamped now. Parent
// directories are created as needed. The write is not atomic; this is a
// low-stakes single-writer cache and last writer wins.
func (s *Store) Save(types []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to create cache directory")
	}

	if types == nil {
		types = []string{}
	}
	cached := CachedTypes{
		FetchedAt: time.Now().Unix(),
		Types:     types,
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode cache entry")
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFilesystem, "failed to write cache file")
	}

	log := logging.GetLogger("cache")
	log.Debug().
		Str("path", s.path).
		Int("types", len(types)).
		Msg("Cache saved")
	return nil
}
