package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/itbasis/go-clock"
)

type memStorage struct {
	entries map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{entries: make(map[string][]byte)}
}

func (s *memStorage) Read(key string) ([]byte, error) {
	b, ok := s.entries[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return b, nil
}

func (s *memStorage) Write(key string, data []byte) error {
	s.entries[key] = data
	return nil
}

func (s *memStorage) Remove(key string) error {
	delete(s.entries, key)
	return nil
}

func TestGetPut(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 9, 15, 10, 30, 0, 0, time.Local))
	c := New(mock, newMemStorage())

	if _, ok := c.Get("players"); ok {
		t.Fatal("expected no entry in an empty cache")
	}

	if err := c.Put("players", []byte("directory")); err != nil {
		t.Fatalf("error putting entry: %v", err)
	}

	b, ok := c.Get("players")
	if !ok {
		t.Fatal("expected entry after put")
	}
	if string(b) != "directory" {
		t.Errorf("unexpected cache value: %s", b)
	}
}

func TestEntryExpiresAtMidnight(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 9, 15, 23, 30, 0, 0, time.Local))
	c := New(mock, newMemStorage())

	if err := c.Put("players", []byte("directory")); err != nil {
		t.Fatalf("error putting entry: %v", err)
	}

	// Still before midnight.
	mock.Add(29 * time.Minute)
	if _, ok := c.Get("players"); !ok {
		t.Fatal("entry should still be valid before midnight")
	}

	// Crossing midnight makes the entry stale even though it is under an hour old.
	mock.Add(31 * time.Minute)
	if _, ok := c.Get("players"); ok {
		t.Fatal("entry should be stale after midnight")
	}
}

func TestPutDropsPreviousDay(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 9, 15, 12, 0, 0, 0, time.Local))
	storage := newMemStorage()
	c := New(mock, storage)

	if err := c.Put("players", []byte("old")); err != nil {
		t.Fatalf("error putting entry: %v", err)
	}

	mock.Add(24 * time.Hour)
	if err := c.Put("players", []byte("new")); err != nil {
		t.Fatalf("error putting entry: %v", err)
	}

	if len(storage.entries) != 1 {
		t.Errorf("expected only today's entry to remain, have %d", len(storage.entries))
	}
	b, ok := c.Get("players")
	if !ok || string(b) != "new" {
		t.Errorf("expected today's entry, got %q (found=%v)", b, ok)
	}
}

func TestFSStorage(t *testing.T) {
	s, err := NewFSStorage(t.TempDir())
	if err != nil {
		t.Fatalf("error creating storage: %v", err)
	}

	if err := s.Write("players-2024-09-15", []byte("directory")); err != nil {
		t.Fatalf("error writing: %v", err)
	}
	b, err := s.Read("players-2024-09-15")
	if err != nil {
		t.Fatalf("error reading: %v", err)
	}
	if string(b) != "directory" {
		t.Errorf("unexpected value: %s", b)
	}

	if err := s.Remove("players-2024-09-15"); err != nil {
		t.Fatalf("error removing: %v", err)
	}
	if err := s.Remove("players-2024-09-15"); err != nil {
		t.Fatalf("removing a missing entry should not error: %v", err)
	}
	if _, err := s.Read("players-2024-09-15"); err == nil {
		t.Error("expected error reading removed entry")
	}
}
