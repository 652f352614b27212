package novelwriting

import "errors"

var (
	// ErrNotReady is returned while the tokenizer or the thesaurus store is
	// still loading. Callers should retry once the manager signals readiness.
	ErrNotReady = errors.New("resource not ready")

	// ErrInitialization wraps the reason a resource failed to load. The
	// resource stays unusable for the lifetime of the manager.
	ErrInitialization = errors.New("initialization failed")

	// ErrStoreFailure wraps errors from the thesaurus database itself
	// (corrupt file, I/O error). It is never used for a missing word.
	ErrStoreFailure = errors.New("thesaurus store failure")

	// ErrClosed is returned by a manager after Close.
	ErrClosed = errors.New("manager closed")
)
