// Package cache provides a small, process-local cache keyed by calendar day.
// It fronts the bulk player-directory fetch so that a refresh cycle does not
// re-download the full directory every time. Entries expire at the next local
// midnight, so nothing lives longer than 24 hours. Writes are last-writer-wins;
// there is one cache per process, so concurrent writers for the same key are
// not guarded against.
package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/itbasis/go-clock"
)

const dayFormat = time.DateOnly

// Storage is the backing store for cache entries. Implementations only need
// to be able to read and write whole values; expiry is handled by the cache.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	// Remove deletes an entry. Removing a missing entry is not an error.
	Remove(key string) error
}

type Cache struct {
	clock   clock.Clock
	storage Storage
}

func New(clock clock.Clock, storage Storage) *Cache {
	return &Cache{clock: clock, storage: storage}
}

// Get returns the value stored under name today, or false if there is no
// entry for the current day. An entry written before the most recent local
// midnight is stale and treated as missing.
func (c *Cache) Get(name string) ([]byte, bool) {
	b, err := c.storage.Read(c.key(name))
	if err != nil {
		return nil, false
	}
	return b, true
}

// Put stores the value under name for the remainder of the current day and
// drops yesterday's entry if one is still around.
func (c *Cache) Put(name string, data []byte) error {
	yesterday := c.clock.Now().AddDate(0, 0, -1)
	if err := c.storage.Remove(keyFor(name, yesterday)); err != nil {
		return fmt.Errorf("error removing stale cache entry for %s: %w", name, err)
	}
	return c.storage.Write(c.key(name), data)
}

func (c *Cache) key(name string) string {
	return keyFor(name, c.clock.Now())
}

func keyFor(name string, t time.Time) string {
	return fmt.Sprintf("%s-%s", name, t.Format(dayFormat))
}

// FSStorage stores each entry as a file in a single directory.
type FSStorage struct {
	dir string
}

func NewFSStorage(dir string) (*FSStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating cache dir %s: %w", dir, err)
	}
	return &FSStorage{dir: dir}, nil
}

func (s *FSStorage) Read(key string) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

func (s *FSStorage) Write(key string, data []byte) error {
	return os.WriteFile(s.path(key), data, 0o644)
}

func (s *FSStorage) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FSStorage) path(key string) string {
	// Keys are simple names plus a date, but never trust them as paths.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key)
}
