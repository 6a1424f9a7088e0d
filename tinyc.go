// Package tinyc translates programs written in the TINY teaching language
// into C++ source code.
package tinyc

import (
	"crypto/sha256"
	"io/ioutil"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/tinylang/tinyc/tiny/translate"
)

// Config defines optional collaborators for a Translator.
type Config struct {
	Logger logrus.FieldLogger

	// If given, translations are looked up here before running the parser and
	// persisted here after a successful run. Translation is deterministic, so
	// a cached output is byte-identical to a fresh one.
	Cache TranslationCache

	// Used by ServePlaygroundHTTP to check the origin of websocket upgrade
	// requests. If nil, all origins are allowed.
	WebSocketOriginCheck func(r *http.Request) bool
}

const (
	sourceExtension = ".txt"
	outputExtension = ".cpp"
)

// Translator runs translations. Runs are independent of one another: each
// one gets a fresh symbol table and output buffer.
type Translator struct {
	config Config
	logger logrus.FieldLogger
}

// NewTranslator returns a Translator for the given config. A nil config is
// equivalent to a zero one.
func NewTranslator(config *Config) *Translator {
	t := &Translator{}
	if config != nil {
		t.config = *config
	}
	t.logger = t.config.Logger
	if t.logger == nil {
		t.logger = logrus.StandardLogger()
	}
	return t
}

// TranslateSource translates a single TINY program and returns the generated
// C++ source, consulting the cache when one is configured.
func (t *Translator) TranslateSource(src []byte) (string, error) {
	if t.config.Cache == nil {
		return translate.Translate(src)
	}

	hash := sha256.Sum256(src)
	if output := t.config.Cache.GetTranslation(hash[:]); output != "" {
		return output, nil
	}

	output, err := translate.Translate(src)
	if err != nil {
		return "", err
	}
	t.config.Cache.PersistTranslation(hash[:], output)
	return output, nil
}

// TranslateFile translates the program at path, which must name a readable
// ".txt" file, and writes the result next to it with a ".cpp" extension. It
// returns the output path. Nothing is written for a failed run.
func (t *Translator) TranslateFile(path string) (string, error) {
	if filepath.Ext(path) != sourceExtension {
		return "", errors.Errorf("source must have the %v extension", sourceExtension)
	}

	src, err := ioutil.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to read source")
	}

	output, err := t.TranslateSource(src)
	if err != nil {
		return "", err
	}

	outPath := strings.TrimSuffix(path, sourceExtension) + outputExtension
	if err := ioutil.WriteFile(outPath, []byte(output), 0644); err != nil {
		return "", errors.Wrap(err, "unable to write output")
	}
	return outPath, nil
}
