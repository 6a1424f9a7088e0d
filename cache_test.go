package tinyc

import (
	"crypto/sha256"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.msgpack")

	hash := sha256.Sum256([]byte("BEGIN\nEND\n"))

	cache := &FileCache{Path: path}
	require.NoError(t, cache.Load())
	assert.Empty(t, cache.GetTranslation(hash[:]))

	cache.PersistTranslation(hash[:], "int main() {}")
	require.NoError(t, cache.Flush())

	reloaded := &FileCache{Path: path}
	require.NoError(t, reloaded.Load())
	assert.Equal(t, "int main() {}", reloaded.GetTranslation(hash[:]))
}

func TestFileCache_PersistWithoutLoad(t *testing.T) {
	cache := &FileCache{Path: filepath.Join(t.TempDir(), "cache.msgpack")}
	cache.PersistTranslation([]byte{1, 2, 3}, "output")
	assert.Equal(t, "output", cache.GetTranslation([]byte{1, 2, 3}))
	require.NoError(t, cache.Flush())
}
