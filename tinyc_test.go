package tinyc

import (
	"crypto/sha256"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinylang/tinyc/tiny/translate"
)

func TestTranslateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("BEGIN\nLET x = 5\nPRINT x\nEND"), 0644))

	outPath, err := NewTranslator(nil).TranslateFile(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "prog.cpp"), outPath)

	output, err := ioutil.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(output), "#include <iostream>")
	assert.Contains(t, string(output), "int x = 5;")
}

func TestTranslateFile_WrongExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.tiny")
	require.NoError(t, ioutil.WriteFile(path, []byte("BEGIN\nEND"), 0644))

	_, err := NewTranslator(nil).TranslateFile(path)
	assert.EqualError(t, err, "source must have the .txt extension")
}

func TestTranslateFile_MissingFile(t *testing.T) {
	_, err := NewTranslator(nil).TranslateFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestTranslateFile_NoOutputOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte("BEGIN\nPRINT x\nEND"), 0644))

	_, err := NewTranslator(nil).TranslateFile(path)
	require.Error(t, err)

	terr, ok := err.(*translate.Error)
	require.True(t, ok)
	assert.Equal(t, translate.KindSyntax, terr.Kind)

	_, err = os.Stat(filepath.Join(dir, "prog.cpp"))
	assert.True(t, os.IsNotExist(err))
}

type fakeCache struct {
	entries  map[string]string
	persists int
}

func (c *fakeCache) GetTranslation(hash []byte) string {
	return c.entries[string(hash)]
}

func (c *fakeCache) PersistTranslation(hash []byte, output string) {
	c.persists++
	c.entries[string(hash)] = output
}

func TestTranslateSource_Cache(t *testing.T) {
	cache := &fakeCache{entries: map[string]string{}}
	translator := NewTranslator(&Config{
		Cache: cache,
	})

	src := []byte("BEGIN\nLET x = 1\nEND\n")
	output, err := translator.TranslateSource(src)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.persists)

	// Later runs with the same source are served from the cache.
	hash := sha256.Sum256(src)
	cache.entries[string(hash[:])] = "cached output"
	cached, err := translator.TranslateSource(src)
	require.NoError(t, err)
	assert.Equal(t, "cached output", cached)
	assert.Equal(t, 1, cache.persists)

	assert.NotEqual(t, output, cached)
}

func TestTranslateSource_CacheSkipsFailedRuns(t *testing.T) {
	cache := &fakeCache{entries: map[string]string{}}
	translator := NewTranslator(&Config{
		Cache: cache,
	})

	_, err := translator.TranslateSource([]byte("BEGIN\nPRINT x\nEND"))
	require.Error(t, err)
	assert.Zero(t, cache.persists)
}
