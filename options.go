package novelwriting

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

const (
	appName        = "novelwriting"
	dictionaryFile = "dictionary.db"

	DefaultQueryTimeout = 2 * time.Second
)

// Option configures a Manager.
type Option func(*Manager)

// WithDictionaryPath sets the thesaurus database file. By default it is
// looked up as novelwriting/dictionary.db in the XDG data directories.
func WithDictionaryPath(path string) Option {
	return func(m *Manager) {
		m.dictPath = path
	}
}

// WithSystemDictionary selects the kagome system dictionary (DictIPA by default).
func WithSystemDictionary(sys SystemDictionary) Option {
	return func(m *Manager) {
		m.sysDict = sys
	}
}

// WithUserDictionary adds a kagome user dictionary to the tokenizer.
func WithUserDictionary(path string) Option {
	return func(m *Manager) {
		m.userDictPath = path
	}
}

// WithTokenizer uses an already constructed tokenizer instead of building a
// kagome one.
func WithTokenizer(t Tokenizer) Option {
	return func(m *Manager) {
		m.customTokenizer = t
	}
}

// WithLogger sets the logger of the manager and of the tokenizer and
// thesaurus store it opens. BuildThesaurusStore takes WithBuildLogger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithInitFailureHandler registers a function called once for each resource
// that fails to load, e.g. to notify the user.
func WithInitFailureHandler(fn func(error)) Option {
	return func(m *Manager) {
		m.onInitFailure = fn
	}
}

// WithQueryTimeout bounds each thesaurus lookup.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		m.queryTimeout = timeout
	}
}

// DefaultDictionaryPath returns the thesaurus file found in the XDG data
// directories, or the location in XDG_DATA_HOME where it is expected.
func DefaultDictionaryPath() (string, error) {
	rel := filepath.Join(appName, dictionaryFile)
	if path, err := xdg.SearchDataFile(rel); err == nil {
		return path, nil
	}
	path, err := xdg.DataFile(rel)
	if err != nil {
		return "", fmt.Errorf("failed to get data directory: %w", err)
	}
	return path, nil
}
