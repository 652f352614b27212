package novelwriting

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKagome(t *testing.T) *KagomeTokenizer {
	t.Helper()
	if testing.Short() {
		t.Skip("building the kagome dictionary is slow")
	}
	k, err := NewKagomeTokenizer(DictIPA)
	require.NoError(t, err)
	return k
}

func TestKagomeTokenizer(t *testing.T) {
	k := newTestKagome(t)

	tokens := k.Tokenize("猫が好き")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Surface: "猫", BaseForm: "猫", Reading: "ネコ", POS: Noun, Start: 0, Length: 1}, tokens[0])
	assert.Equal(t, "が", tokens[1].Surface)
	assert.Equal(t, 1, tokens[1].Start)
	assert.Equal(t, Other, tokens[1].POS)
	assert.Equal(t, Span{Start: 2, End: 4}, tokens[2].Span())
}

func TestKagomeTokenizerBaseForm(t *testing.T) {
	k := newTestKagome(t)

	tokens := k.Tokenize("走った")
	require.NotEmpty(t, tokens)
	assert.Equal(t, "走っ", tokens[0].Surface)
	assert.Equal(t, "走る", tokens[0].BaseForm)
	assert.Equal(t, Verb, tokens[0].POS)
}

func TestKagomeTokenizerSpansAreOrdered(t *testing.T) {
	k := newTestKagome(t)

	text := "吾輩は猫である。名前はまだ無い。"
	tokens := k.Tokenize(text)
	require.NotEmpty(t, tokens)
	next := 0
	for _, tok := range tokens {
		assert.Equal(t, next, tok.Start, "token %q", tok.Surface)
		next = tok.End()
	}
	assert.Equal(t, characterCount(text), next)
	assert.Equal(t, "吾輩 は 猫 で ある。名前 は まだ 無い。", tokens.Segmented())
}

func TestKagomeTokenizerEmpty(t *testing.T) {
	k := newTestKagome(t)
	assert.Empty(t, k.Tokenize(""))
}

func TestNewKagomeTokenizerErrors(t *testing.T) {
	_, err := NewKagomeTokenizer("mecab")
	assert.ErrorContains(t, err, "unknown system dictionary")

	if testing.Short() {
		t.Skip("building the kagome dictionary is slow")
	}
	_, err = NewKagomeTokenizer(DictIPA, WithUserDictionaryFile(filepath.Join(t.TempDir(), "missing.txt")))
	assert.ErrorContains(t, err, "failed to load user dictionary")
}

func TestNewKagomeTokenizerLogger(t *testing.T) {
	if testing.Short() {
		t.Skip("building the kagome dictionary is slow")
	}
	var buf bytes.Buffer
	_, err := NewKagomeTokenizer(DictIPA, WithTokenizerLogger(zerolog.New(&buf)))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "tokenizer constructed")
	assert.Contains(t, buf.String(), `"dict":"ipa"`)
}

func TestKagomeTokenizerUserDictionary(t *testing.T) {
	if testing.Short() {
		t.Skip("building the kagome dictionary is slow")
	}
	path := filepath.Join(t.TempDir(), "user.txt")
	require.NoError(t, os.WriteFile(path, []byte("吾輩猫,吾輩猫,ワガハイネコ,カスタム名詞\n"), 0o644))

	k, err := NewKagomeTokenizer(DictIPA, WithUserDictionaryFile(path))
	require.NoError(t, err)
	tokens := k.Tokenize("吾輩猫が好き")
	require.NotEmpty(t, tokens)
	assert.Equal(t, "吾輩猫", tokens[0].Surface)
	assert.Equal(t, 3, tokens[0].Length)
}

func TestConvertKagomeTokensSkipsDummy(t *testing.T) {
	assert.Empty(t, convertKagomeTokens([]tokenizer.Token{
		{Class: tokenizer.DUMMY, Surface: "BOS"},
		{Class: tokenizer.DUMMY, Surface: "EOS"},
	}))
}
