package novelwriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

var novelSentence = []string{
	"吾輩", "は", "猫", "で", "ある", "。",
	"名前", "は", "まだ", "無い", "。",
}

func TestJoinWithSpacingRule(t *testing.T) {
	testCases := []struct {
		tokens   []string
		expected string
		desc     string
	}{
		{nil, "", "No tokens"},
		{[]string{"猫"}, "猫", "Single token"},
		{
			[]string{"私", "は", "日本語", "を", "勉強", "して", "います"},
			"私 は 日本語 を 勉強 して います",
			"Basic Japanese tokenization",
		},
		{
			[]string{"(", "これ", "は", "テスト", "です", ")"},
			"(これ は テスト です)",
			"Japanese with parentheses",
		},
		{
			[]string{"私", "は", "日本語", "を", "勉強", "して", "います", "。", "毎日", "、", "新しい", "単語", "と", "文法", "を", "学んで", "います", "。"},
			"私 は 日本語 を 勉強 して います。毎日、新しい 単語 と 文法 を 学んで います。",
			"Comma and period",
		},
		{
			novelSentence,
			"吾輩 は 猫 で ある。名前 は まだ 無い。",
			"Sentence punctuation",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, JoinWithSpacingRule(tc.tokens))
		})
	}
}

func TestSegmented(t *testing.T) {
	assert.Equal(t, "猫 が 好き", neko().Segmented())
	assert.Empty(t, Tokens(nil).Segmented())
}

func TestJapaneseSpacingRule(t *testing.T) {
	testCases := []struct {
		prev     string
		current  string
		expected bool
	}{
		{"私", "は", true},
		{"は", "、", false},
		{"無い", "。", false},
		{"。", "名前", false},
		{"、", "新しい", false},
		{"「", "猫", false},
		{"好き", "」", false},
		{"", "猫", common.DefaultSpacingRule("", "猫")},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, japaneseSpacingRule(tc.prev, tc.current),
			"japaneseSpacingRule(%q, %q)", tc.prev, tc.current)
	}
}

// common.DefaultSpacingRule still decides between words
func TestJapaneseSpacingRuleDefersToDefault(t *testing.T) {
	for _, pair := range [][2]string{{"日本", "語"}, {"私", "は"}, {"Hello", "world"}} {
		assert.Equal(t, common.DefaultSpacingRule(pair[0], pair[1]), japaneseSpacingRule(pair[0], pair[1]),
			"%q %q", pair[0], pair[1])
	}
}

func BenchmarkSimpleJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = strings.Join(novelSentence, " ")
	}
}

func BenchmarkSmartJoin(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = JoinWithSpacingRule(novelSentence)
	}
}
