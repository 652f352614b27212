package novelwriting

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Manager owns the tokenizer and the thesaurus store and serves hover,
// completion and status requests for an editor.
//
// Both resources load in the background after Start. Until they are ready
// every request returns ErrNotReady (or the placeholder status) immediately
// instead of blocking.
type Manager struct {
	dictPath        string
	sysDict         SystemDictionary
	userDictPath    string
	customTokenizer Tokenizer
	queryTimeout    time.Duration
	logger          zerolog.Logger
	onInitFailure   func(error)

	tokenizer *Resource[Tokenizer]
	thesaurus *Resource[*ThesaurusStore]

	startOnce sync.Once
	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool
}

// NewManager creates a manager. Nothing is loaded until Start or Init.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sysDict:      DictIPA,
		queryTimeout: DefaultQueryTimeout,
		logger:       Logger,
		tokenizer:    NewResource[Tokenizer]("tokenizer"),
		thesaurus:    NewResource[*ThesaurusStore]("thesaurus"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins loading the tokenizer and the thesaurus concurrently and
// returns at once. Each load failure is logged and passed to the
// initialization failure handler exactly once; the failed resource is not
// retried. Calling Start again has no effect.
//
// Loading keeps ctx's values but not its deadline or cancellation: the
// resources live as long as the manager, not as long as the call.
func (m *Manager) Start(ctx context.Context) {
	m.startOnce.Do(func() {
		ctx := context.WithoutCancel(ctx)
		go m.loadTokenizer()
		go m.loadThesaurus(ctx)
	})
}

// Init starts loading and waits for both resources. When ctx ends first, Init
// returns its error and loading goes on in the background.
func (m *Manager) Init(ctx context.Context) error {
	m.Start(ctx)
	return m.WaitReady(ctx)
}

// WaitReady blocks until both resources left the loading state, or ctx ends.
// It returns the first initialization failure, if any.
func (m *Manager) WaitReady(ctx context.Context) error {
	_, tokErr := m.tokenizer.Wait(ctx)
	_, thesErr := m.thesaurus.Wait(ctx)
	return errors.Join(tokErr, thesErr)
}

// Ready reports whether both resources are usable.
func (m *Manager) Ready() bool {
	return m.tokenizer.State() == Ready && m.thesaurus.State() == Ready
}

// TokenizerState returns the readiness of the tokenizer.
func (m *Manager) TokenizerState() ResourceState {
	return m.tokenizer.State()
}

// ThesaurusState returns the readiness of the thesaurus store.
func (m *Manager) ThesaurusState() ResourceState {
	return m.thesaurus.State()
}

func (m *Manager) loadTokenizer() {
	if m.customTokenizer != nil {
		m.tokenizer.Set(m.customTokenizer)
		return
	}
	t, err := NewKagomeTokenizer(m.sysDict,
		WithUserDictionaryFile(m.userDictPath),
		WithTokenizerLogger(m.logger))
	if err != nil {
		m.fail(m.tokenizer.Fail, "tokenizer", err)
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.tokenizer.Set(t)
	m.logger.Info().Str("component", "tokenizer").Msg("tokenizer ready")
}

func (m *Manager) loadThesaurus(ctx context.Context) {
	path := m.dictPath
	if path == "" {
		var err error
		if path, err = DefaultDictionaryPath(); err != nil {
			m.fail(m.thesaurus.Fail, "thesaurus", err)
			return
		}
	}

	store, err := OpenThesaurusStore(ctx, path,
		WithStoreLogger(m.logger.With().Str("component", "thesaurus").Logger()))
	if err != nil {
		m.fail(m.thesaurus.Fail, "thesaurus", err)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		// Close already ran: nobody else will release this store
		store.Close()
		return
	}
	m.thesaurus.Set(store)
}

func (m *Manager) fail(markFailed func(error) bool, component string, err error) {
	if !markFailed(err) {
		return
	}
	m.logger.Error().Err(err).Str("component", component).Msg("initialization failed")
	if m.onInitFailure != nil {
		m.onInitFailure(fmt.Errorf("%w: %s: %w", ErrInitialization, component, err))
	}
}

// Close releases the thesaurus store. Resources still loading are released
// as soon as they finish. Close is idempotent.
func (m *Manager) Close() error {
	var err error
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.mu.Unlock()

		m.tokenizer.Fail(ErrClosed)
		m.thesaurus.Fail(ErrClosed)
		if store, gerr := m.thesaurus.Get(); gerr == nil {
			err = store.Close()
		}
	})
	return err
}

func (m *Manager) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Manager) getTokenizer() (Tokenizer, error) {
	if m.isClosed() {
		return nil, ErrClosed
	}
	return m.tokenizer.Get()
}

func (m *Manager) getThesaurus() (*ThesaurusStore, error) {
	if m.isClosed() {
		return nil, ErrClosed
	}
	return m.thesaurus.Get()
}

// probeOffset is the character looked at for a cursor: the one right after it.
func probeOffset(cursor int) int {
	return cursor + 1
}

// Hover returns the base form of the word under the cursor of line, with the
// word's span. cursor and the span are rune offsets within line. It returns
// nil and no error when the cursor is not on a word.
func (m *Manager) Hover(line string, cursor int) (*HoverResult, error) {
	t, err := m.getTokenizer()
	if err != nil {
		return nil, err
	}
	tok, ok := FindTokenAt(t.Tokenize(line), probeOffset(cursor))
	if !ok {
		return nil, nil
	}
	return &HoverResult{BaseForm: tok.BaseForm, Span: tok.Span()}, nil
}

// Complete returns the synonyms of the word under the cursor of line as
// completion items replacing that word. The result is empty, without error,
// when the cursor is not on a word or the word is not in the thesaurus.
func (m *Manager) Complete(ctx context.Context, line string, cursor int) ([]CompletionItem, error) {
	t, err := m.getTokenizer()
	if err != nil {
		return nil, err
	}
	store, err := m.getThesaurus()
	if err != nil {
		return nil, err
	}

	tok, ok := FindTokenAt(t.Tokenize(line), probeOffset(cursor))
	if !ok {
		return []CompletionItem{}, nil
	}

	if m.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.queryTimeout)
		defer cancel()
	}
	entries, err := store.Lookup(ctx, tok.BaseForm, tok.Reading)
	if err != nil {
		return nil, err
	}

	items := make([]CompletionItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, completionItem(e, tok.Span()))
	}
	return items, nil
}

func completionItem(e ThesaurusEntry, span Span) CompletionItem {
	return CompletionItem{
		Label:      fmt.Sprintf("%s (%s)", e.CaptionBody, e.Reading),
		InsertText: e.CaptionBody,
		Detail:     fmt.Sprintf("意味大分類: %s\n意味中分類: %s\n意味小分類: %s", e.Section, e.MidItem, e.SmallItem),
		Range:      span,
	}
}

// Tokenize runs the tokenizer on text.
func (m *Manager) Tokenize(text string) (Tokens, error) {
	t, err := m.getTokenizer()
	if err != nil {
		return nil, err
	}
	return t.Tokenize(text), nil
}

// Stats tokenizes the whole document and computes its style digest. It
// returns nil and no error for a document without any token.
func (m *Manager) Stats(text string) (*StyleDigest, error) {
	tokens, err := m.Tokenize(text)
	if err != nil {
		return nil, err
	}
	digest, ok := AnalyzeStyle(tokens, characterCount(text))
	if !ok {
		return nil, nil
	}
	return &digest, nil
}

// Digest renders the status line of the document, or the placeholder while
// the tokenizer is loading or the document has no token.
func (m *Manager) Digest(text string) StatusLine {
	digest, err := m.Stats(text)
	if err != nil || digest == nil {
		if err != nil && !errors.Is(err, ErrNotReady) {
			m.logger.Debug().Err(err).Msg("status digest unavailable")
		}
		return NotReadyStatus()
	}
	return RenderStatus(*digest)
}

// characterCount is the document length shown in the status line.
func characterCount(text string) int {
	return utf8.RuneCountInString(text)
}
