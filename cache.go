package tinyc

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"sync"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack"
)

// TranslationCache stores the output of successful translation runs, keyed
// by a hash of the source. Storage operations are done on a best effort
// basis and cannot return errors – a cache that loses entries only costs a
// re-translation.
type TranslationCache interface {
	// GetTranslation returns the cached output if it's available or an empty
	// string otherwise.
	GetTranslation(hash []byte) string

	// PersistTranslation stores the output for the given source hash.
	PersistTranslation(hash []byte, output string)
}

// FileCache is a TranslationCache backed by a msgpack-encoded file. Entries
// live in memory between Load and Flush, so lookups during a batch run never
// touch the disk.
type FileCache struct {
	Path string

	mutex   sync.Mutex
	entries map[string]string
}

// Load reads previously flushed entries from the file. A missing file is not
// an error; the cache simply starts out empty.
func (c *FileCache) Load() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = map[string]string{}

	buf, err := ioutil.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrap(err, "unable to read cache file")
	}
	if err := msgpack.Unmarshal(buf, &c.entries); err != nil {
		return errors.Wrap(err, "unable to decode cache file")
	}
	return nil
}

// Flush writes the entries back to the file.
func (c *FileCache) Flush() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	buf, err := msgpack.Marshal(c.entries)
	if err != nil {
		return errors.Wrap(err, "unable to encode cache")
	}
	if err := ioutil.WriteFile(c.Path, buf, 0644); err != nil {
		return errors.Wrap(err, "unable to write cache file")
	}
	return nil
}

func (c *FileCache) GetTranslation(hash []byte) string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.entries[hex.EncodeToString(hash)]
}

func (c *FileCache) PersistTranslation(hash []byte, output string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.entries == nil {
		c.entries = map[string]string{}
	}
	c.entries[hex.EncodeToString(hash)] = output
}
