package novelwriting

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SourceEncoding is the character encoding of a thesaurus CSV.
type SourceEncoding int

const (
	EncodingUTF8 SourceEncoding = iota
	EncodingShiftJIS
	EncodingEUCJP
)

// thesaurusColumns are the CSV header names the importer needs, in the order
// they are stored.
var thesaurusColumns = []string{"classNum", "section", "midItem", "smallItem", "captionBody", "reading"}

const schemaWords = `CREATE TABLE words (
	classNum    TEXT NOT NULL,
	section     TEXT NOT NULL,
	midItem     TEXT NOT NULL,
	smallItem   TEXT NOT NULL,
	captionBody TEXT NOT NULL,
	reading     TEXT NOT NULL
)`

var schemaIndexes = []string{
	`CREATE INDEX words_caption_reading ON words (captionBody, reading)`,
	`CREATE INDEX words_class ON words (classNum)`,
}

type buildConfig struct {
	encoding SourceEncoding
	logger   zerolog.Logger
}

// BuildOption configures BuildThesaurusStore.
type BuildOption func(*buildConfig)

// WithSourceEncoding sets the encoding of the CSV. Older distributions of the
// Word List by Semantic Principles are Shift_JIS. The default is UTF-8, with
// or without BOM.
func WithSourceEncoding(enc SourceEncoding) BuildOption {
	return func(c *buildConfig) {
		c.encoding = enc
	}
}

// WithBuildLogger sets the logger reporting the import.
func WithBuildLogger(logger zerolog.Logger) BuildOption {
	return func(c *buildConfig) {
		c.logger = logger
	}
}

// BuildThesaurusStore creates a new SQLite thesaurus at path from a CSV with a
// header row naming at least the columns classNum, section, midItem,
// smallItem, captionBody and reading (extra columns are ignored). Readings are
// stored in hiragana. It returns the number of imported entries.
//
// path must not exist yet; a partially written file is removed on failure.
func BuildThesaurusStore(ctx context.Context, path string, r io.Reader, opts ...BuildOption) (n int, err error) {
	cfg := buildConfig{encoding: EncodingUTF8, logger: Logger}
	for _, opt := range opts {
		opt(&cfg)
	}

	if _, err := os.Stat(path); err == nil {
		return 0, fmt.Errorf("thesaurus %s already exists", path)
	}

	reader := csv.NewReader(transform.NewReader(r, decoderFor(cfg.encoding).Transformer))
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return 0, err
	}

	db, err := sql.Open(sqliteDriver, path)
	if err != nil {
		return 0, fmt.Errorf("failed to create thesaurus %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, db.Close())
		if err != nil {
			os.Remove(path)
		}
	}()

	if _, err = db.ExecContext(ctx, schemaWords); err != nil {
		return 0, fmt.Errorf("failed to create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	insert, err := tx.PrepareContext(ctx, `INSERT INTO words (classNum, section, midItem, smallItem, captionBody, reading) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer insert.Close()

	line := 1
	for {
		record, rerr := reader.Read()
		if rerr == io.EOF {
			break
		}
		line++
		if rerr != nil {
			return n, fmt.Errorf("failed to read CSV record at line %d: %w", line, rerr)
		}

		values := make([]any, len(thesaurusColumns))
		for i, col := range index {
			if col >= len(record) {
				return n, fmt.Errorf("line %d: missing column %s", line, thesaurusColumns[i])
			}
			values[i] = strings.TrimSpace(record[col])
		}
		values[5] = NormalizeReading(values[5].(string))

		if _, err = insert.ExecContext(ctx, values...); err != nil {
			return n, fmt.Errorf("failed to insert line %d: %w", line, err)
		}
		n++
	}

	if err = tx.Commit(); err != nil {
		return n, fmt.Errorf("failed to commit import: %w", err)
	}
	for _, stmt := range schemaIndexes {
		if _, err = db.ExecContext(ctx, stmt); err != nil {
			return n, fmt.Errorf("failed to create index: %w", err)
		}
	}

	cfg.logger.Info().Str("path", path).Int("entries", n).Msg("thesaurus built")
	return n, nil
}

// columnIndex maps each of thesaurusColumns to its position in the header.
func columnIndex(header []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make([]int, len(thesaurusColumns))
	for i, name := range thesaurusColumns {
		pos, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("CSV header lacks column %q", name)
		}
		index[i] = pos
	}
	return index, nil
}

func decoderFor(enc SourceEncoding) *encoding.Decoder {
	switch enc {
	case EncodingShiftJIS:
		return japanese.ShiftJIS.NewDecoder()
	case EncodingEUCJP:
		return japanese.EUCJP.NewDecoder()
	}
	return xunicode.UTF8BOM.NewDecoder()
}
