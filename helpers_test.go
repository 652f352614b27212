package novelwriting

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testThesaurusCSV is a small excerpt in the layout of the Word List by
// Semantic Principles. 語る carries a katakana reading to check
// that readings are folded on import.
const testThesaurusCSV = `classNum,section,midItem,smallItem,captionBody,reading
1.5501,体,自然,動物,猫,ねこ
1.5501,体,自然,動物,ネコ,ねこ
1.5501,体,自然,動物,にゃんこ,にゃんこ
1.5501,体,自然,動物,猫ちゃん,ねこちゃん
1.2000,体,主体,人間,人,ひと
1.2000,体,主体,人間,人間,にんげん
1.2000,体,主体,人間,人物,じんぶつ
2.3100,用,活動,言語,話す,はなす
2.3100,用,活動,言語,しゃべる,しゃべる
2.3100,用,活動,言語,語る,カタル
`

func buildTestStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dictionary.db")
	n, err := BuildThesaurusStore(context.Background(), path, strings.NewReader(testThesaurusCSV))
	require.NoError(t, err)
	require.Equal(t, 10, n)
	return path
}

func openTestStore(t *testing.T) *ThesaurusStore {
	t.Helper()
	store, err := OpenThesaurusStore(context.Background(), buildTestStore(t))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// neko is the tokenization of 猫が好き as produced by kagome with the IPA
// dictionary.
func neko() Tokens {
	return Tokens{
		{Surface: "猫", BaseForm: "猫", Reading: "ネコ", POS: Noun, Start: 0, Length: 1},
		{Surface: "が", BaseForm: "が", Reading: "ガ", POS: Other, Start: 1, Length: 1},
		{Surface: "好き", BaseForm: "好き", Reading: "スキ", POS: Noun, Start: 2, Length: 2},
	}
}

// stubTokenizer returns the tokens registered for a text and nothing for
// anything else.
func stubTokenizer(known map[string]Tokens) Tokenizer {
	return TokenizerFunc(func(text string) Tokens {
		return known[text]
	})
}
