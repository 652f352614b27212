package novelwriting

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/rs/zerolog"
)

// Tokenizer splits text into morphemes. Implementations must return tokens in
// text order with non-overlapping spans.
type Tokenizer interface {
	Tokenize(text string) Tokens
}

// SystemDictionary selects the kagome system dictionary.
type SystemDictionary string

const (
	DictIPA SystemDictionary = "ipa"
	DictUni SystemDictionary = "uni"
)

// KagomeTokenizer is a Tokenizer backed by the kagome morphological analyzer.
type KagomeTokenizer struct {
	t *tokenizer.Tokenizer
}

type kagomeConfig struct {
	userDictPath string
	logger       zerolog.Logger
}

// KagomeOption configures NewKagomeTokenizer.
type KagomeOption func(*kagomeConfig)

// WithUserDictionaryFile adds a kagome user dictionary file.
func WithUserDictionaryFile(path string) KagomeOption {
	return func(c *kagomeConfig) {
		c.userDictPath = path
	}
}

// WithTokenizerLogger sets the logger used while building the tokenizer.
func WithTokenizerLogger(logger zerolog.Logger) KagomeOption {
	return func(c *kagomeConfig) {
		c.logger = logger
	}
}

// NewKagomeTokenizer builds a kagome tokenizer on the given system dictionary.
// Building the dictionary takes a noticeable amount of time.
func NewKagomeTokenizer(sys SystemDictionary, opts ...KagomeOption) (*KagomeTokenizer, error) {
	start := time.Now()
	cfg := kagomeConfig{logger: Logger}
	for _, opt := range opts {
		opt(&cfg)
	}

	var d *dict.Dict
	switch sys {
	case DictIPA, "":
		d = ipa.Dict()
	case DictUni:
		d = uni.Dict()
	default:
		return nil, fmt.Errorf("unknown system dictionary %q", sys)
	}

	topts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if cfg.userDictPath != "" {
		udict, err := dict.NewUserDict(cfg.userDictPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load user dictionary %s: %w", cfg.userDictPath, err)
		}
		topts = append(topts, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(d, topts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenizer: %w", err)
	}
	cfg.logger.Info().
		Str("component", "tokenizer").
		Str("dict", string(sys)).
		Dur("elapsed", time.Since(start)).
		Msg("tokenizer constructed")
	return &KagomeTokenizer{t: t}, nil
}

// Tokenize analyzes text in normal mode.
func (k *KagomeTokenizer) Tokenize(text string) Tokens {
	if text == "" {
		return nil
	}
	return convertKagomeTokens(k.t.Tokenize(text))
}

// convertKagomeTokens turns kagome tokens into Token values. Dummy tokens are
// dropped, base forms fall back to the surface, unknown readings are empty.
func convertKagomeTokens(ktoks []tokenizer.Token) Tokens {
	out := make(Tokens, 0, len(ktoks))
	for _, kt := range ktoks {
		if kt.Class == tokenizer.DUMMY || kt.Surface == "" {
			continue
		}
		base, ok := kt.BaseForm()
		if !ok || base == "" || base == "*" {
			base = kt.Surface
		}
		reading, ok := kt.Reading()
		if !ok || reading == "*" {
			reading = ""
		}
		var tag string
		if pos := kt.POS(); len(pos) > 0 {
			tag = pos[0]
		}
		out = append(out, Token{
			Surface:  kt.Surface,
			BaseForm: base,
			Reading:  reading,
			POS:      ParsePartOfSpeech(tag),
			Start:    kt.Start,
			Length:   utf8.RuneCountInString(kt.Surface),
		})
	}
	return out
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(text string) Tokens

func (f TokenizerFunc) Tokenize(text string) Tokens {
	return f(text)
}
