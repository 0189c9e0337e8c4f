package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("k")
	assert.False(t, ok)

	require.NoError(t, m.Set("k", "v"))
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	m.Delete("k")
	_, ok = m.Get("k")
	assert.False(t, ok)
}

func TestFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("premium-store-cart", `[{"id":1}]`))
	v, ok := f.Get("premium-store-cart")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	// survives a reopen
	f2, err := NewFile(dir)
	require.NoError(t, err)
	v, ok = f2.Get("premium-store-cart")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	f.Delete("premium-store-cart")
	_, ok = f.Get("premium-store-cart")
	assert.False(t, ok)
}

func TestFile_SanitizesKeys(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	require.NoError(t, err)

	require.NoError(t, f.Set("../escape", "x"))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "___escape.json", entries[0].Name())
	v, ok := f.Get("../escape")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}

func TestOpen_FallsBackToMemory(t *testing.T) {
	b := Open("")
	_, isMem := b.(*Memory)
	assert.True(t, isMem)

	// a file where the directory should be is unusable
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	b = Open(blocked)
	_, isMem = b.(*Memory)
	assert.True(t, isMem)
}
