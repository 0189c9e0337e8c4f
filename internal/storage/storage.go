// Package storage provides the key-value backend the cart and wishlist stores
// persist into. The backend is decided once at construction time; callers never
// branch on the environment per call.
package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Backend is the durable client-local store: string keys, string values.
// A missing key reports ok=false; implementations must never fail a read
// loudly, absence and corruption look the same to callers.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string)
}

// Memory is a map-backed Backend, used when no durable location is available.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

// File persists each key as a JSON file under dir. Writes are best-effort:
// a failed write is logged and swallowed, losing a cart write must not crash
// the flow.
type File struct {
	mu  sync.Mutex
	dir string
}

// NewFile probes dir for writability once. If the directory cannot be used it
// returns an error; the caller substitutes a Memory backend.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	_ = os.Remove(probe)
	return &File{dir: dir}, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		return "", false
	}
	return string(b), true
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.WriteFile(f.path(key), []byte(value), 0o644); err != nil {
		log.Printf("[storage] write %s failed: %v", key, err)
		return err
	}
	return nil
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_ = os.Remove(f.path(key))
}

func (f *File) path(key string) string {
	// keys are fixed identifiers like "premium-store-cart"; sanitize anyway
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(f.dir, safe+".json")
}

// Open picks the backend for the session: a File backend rooted at dir, or
// Memory when dir is empty or unusable.
func Open(dir string) Backend {
	if dir == "" {
		return NewMemory()
	}
	fs, err := NewFile(dir)
	if err != nil {
		log.Printf("[storage] %v, falling back to in-memory", err)
		return NewMemory()
	}
	return fs
}
