// Package novelwriting provides Japanese writing aids for text editors:
// the dictionary form of the word under the cursor, thesaurus synonyms as
// completion candidates, and lexical-diversity / part-of-speech statistics of
// a document.
//
// Morphological analysis is done by kagome, synonyms come from a SQLite build
// of the Word List by Semantic Principles (分類語彙表).
package novelwriting

import (
	"context"
	"sync"
)

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// Init creates the package-level manager with the given options and waits
// until it is ready. Options are ignored if the manager already exists.
func Init(ctx context.Context, opts ...Option) error {
	mgr := getOrCreateDefaultManager(opts...)
	return mgr.Init(ctx)
}

// Start creates the package-level manager and lets it load in the background.
func Start(ctx context.Context, opts ...Option) {
	getOrCreateDefaultManager(opts...).Start(ctx)
}

func getOrCreateDefaultManager(opts ...Option) *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewManager(opts...)
	}
	return defaultManager
}

func currentDefaultManager() (*Manager, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		return nil, ErrNotReady
	}
	return defaultManager, nil
}

// Hover is Manager.Hover on the package-level manager.
func Hover(line string, cursor int) (*HoverResult, error) {
	mgr, err := currentDefaultManager()
	if err != nil {
		return nil, err
	}
	return mgr.Hover(line, cursor)
}

// Complete is Manager.Complete on the package-level manager.
func Complete(ctx context.Context, line string, cursor int) ([]CompletionItem, error) {
	mgr, err := currentDefaultManager()
	if err != nil {
		return nil, err
	}
	return mgr.Complete(ctx, line, cursor)
}

// Digest is Manager.Digest on the package-level manager.
func Digest(text string) StatusLine {
	mgr, err := currentDefaultManager()
	if err != nil {
		return NotReadyStatus()
	}
	return mgr.Digest(text)
}

// Close releases the package-level manager. A later Init creates a new one.
func Close() error {
	defaultMu.Lock()
	mgr := defaultManager
	defaultManager = nil
	defaultMu.Unlock()
	if mgr == nil {
		return nil
	}
	return mgr.Close()
}
