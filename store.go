package novelwriting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const (
	sqliteDriver = "sqlite"

	queryClassByCaptionReading = `SELECT classNum FROM words WHERE captionBody = ? AND reading = ? LIMIT 1`
	queryClassByCaption        = `SELECT classNum FROM words WHERE captionBody = ? LIMIT 1`
	queryMembersOfClass        = `SELECT section, midItem, smallItem, captionBody, reading FROM words WHERE classNum = ? ORDER BY rowid`
	querySchemaCheck           = `SELECT classNum, section, midItem, smallItem, captionBody, reading FROM words LIMIT 1`
)

// ThesaurusStore is a read-only synonym dictionary backed by a SQLite file
// with a single `words` table (see BuildThesaurusStore for the schema).
//
// All queries are prepared once when the store is opened. A ThesaurusStore is
// safe for concurrent use; Close releases the prepared queries and the file.
type ThesaurusStore struct {
	path   string
	db     *sql.DB
	logger zerolog.Logger

	classByCaptionReading *sql.Stmt
	classByCaption        *sql.Stmt
	membersOfClass        *sql.Stmt

	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

// StoreOption configures a ThesaurusStore.
type StoreOption func(*ThesaurusStore)

// WithStoreLogger sets the logger used for query diagnostics.
func WithStoreLogger(logger zerolog.Logger) StoreOption {
	return func(s *ThesaurusStore) {
		s.logger = logger
	}
}

// OpenThesaurusStore opens the dictionary file at path and prepares its
// queries. On any failure everything acquired so far is released before the
// error is returned.
func OpenThesaurusStore(ctx context.Context, path string, opts ...StoreOption) (store *ThesaurusStore, err error) {
	s := &ThesaurusStore{
		path:   path,
		logger: Logger.With().Str("component", "thesaurus").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	// sqlite would silently create an empty database for a missing file
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open thesaurus %s: %w", path, err)
	}

	defer func() {
		if err != nil {
			if cerr := s.Close(); cerr != nil {
				s.logger.Warn().Err(cerr).Str("path", path).Msg("cleanup after failed open")
			}
		}
	}()

	start := time.Now()
	s.db, err = sql.Open(sqliteDriver, path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open thesaurus %s: %w", path, err)
	}
	if err = s.db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("%w: connect to thesaurus %s: %w", ErrStoreFailure, path, err)
	}

	if s.classByCaptionReading, err = s.db.PrepareContext(ctx, queryClassByCaptionReading); err != nil {
		return nil, fmt.Errorf("%w: prepare class query: %w", ErrStoreFailure, err)
	}
	if s.classByCaption, err = s.db.PrepareContext(ctx, queryClassByCaption); err != nil {
		return nil, fmt.Errorf("%w: prepare caption query: %w", ErrStoreFailure, err)
	}
	if s.membersOfClass, err = s.db.PrepareContext(ctx, queryMembersOfClass); err != nil {
		return nil, fmt.Errorf("%w: prepare class members query: %w", ErrStoreFailure, err)
	}

	// the driver reads nothing from the file until the first query
	if err = s.checkSchema(ctx); err != nil {
		return nil, fmt.Errorf("%w: %s is not a thesaurus: %w", ErrStoreFailure, path, err)
	}

	s.logger.Info().
		Str("path", path).
		Dur("elapsed", time.Since(start)).
		Msg("thesaurus opened")
	return s, nil
}

func (s *ThesaurusStore) checkSchema(ctx context.Context) error {
	var classNum, section, midItem, smallItem, captionBody, reading string
	err := s.db.QueryRowContext(ctx, querySchemaCheck).
		Scan(&classNum, &section, &midItem, &smallItem, &captionBody, &reading)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// Path returns the file the store was opened from.
func (s *ThesaurusStore) Path() string {
	return s.path
}

// Lookup returns the synonyms of the word with the given caption (base form)
// and reading. The reading may be katakana or hiragana; an empty reading
// matches on the caption alone. Words missing from the dictionary yield an
// empty slice and a nil error. Database errors wrap ErrStoreFailure.
func (s *ThesaurusStore) Lookup(ctx context.Context, caption, reading string) ([]ThesaurusEntry, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	entries, err := lookupSynonyms(ctx, s, caption, reading)
	if err != nil {
		s.logger.Error().Err(err).Str("caption", caption).Msg("thesaurus lookup failed")
		return nil, err
	}
	s.logger.Debug().
		Str("caption", caption).
		Str("reading", reading).
		Int("synonyms", len(entries)).
		Msg("thesaurus lookup")
	return entries, nil
}

func (s *ThesaurusStore) classOf(ctx context.Context, caption, reading string) (classID, bool, error) {
	var row *sql.Row
	if reading == "" {
		row = s.classByCaption.QueryRowContext(ctx, caption)
	} else {
		row = s.classByCaptionReading.QueryRowContext(ctx, caption, reading)
	}

	var id string
	switch err := row.Scan(&id); {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("%w: resolve class of %q: %w", ErrStoreFailure, caption, err)
	}
	return classID(id), true, nil
}

func (s *ThesaurusStore) membersOf(ctx context.Context, id classID) ([]ThesaurusEntry, error) {
	rows, err := s.membersOfClass.QueryContext(ctx, string(id))
	if err != nil {
		return nil, fmt.Errorf("%w: expand class %s: %w", ErrStoreFailure, id, err)
	}
	defer rows.Close()

	entries := []ThesaurusEntry{}
	for rows.Next() {
		var e ThesaurusEntry
		if err := rows.Scan(&e.Section, &e.MidItem, &e.SmallItem, &e.CaptionBody, &e.Reading); err != nil {
			return nil, fmt.Errorf("%w: scan class %s: %w", ErrStoreFailure, id, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: expand class %s: %w", ErrStoreFailure, id, err)
	}
	return entries, nil
}

// Close releases the prepared queries and the database handle. It is safe to
// call more than once, on a nil store, and on a store whose opening failed
// halfway; only the first call does any work.
func (s *ThesaurusStore) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		var errs []error
		for _, stmt := range []*sql.Stmt{s.classByCaptionReading, s.classByCaption, s.membersOfClass} {
			if stmt != nil {
				errs = append(errs, stmt.Close())
			}
		}
		if s.db != nil {
			errs = append(errs, s.db.Close())
		}
		s.closeErr = errors.Join(errs...)
		if s.closeErr == nil && s.db != nil {
			s.logger.Debug().Str("path", s.path).Msg("thesaurus closed")
		}
	})
	return s.closeErr
}
