package novelwriting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindTokenAtBoundaries(t *testing.T) {
	tokens := []Token{
		{Surface: "猫", Start: 0, Length: 1},
		{Surface: "が", Start: 1, Length: 1},
	}

	tok, ok := FindTokenAt(tokens, 0)
	assert.True(t, ok)
	assert.Equal(t, "猫", tok.Surface)

	// shared boundary: the first token in sequence order wins
	tok, ok = FindTokenAt(tokens, 1)
	assert.True(t, ok)
	assert.Equal(t, "猫", tok.Surface)

	// the position right after the last character still matches
	tok, ok = FindTokenAt(tokens, 2)
	assert.True(t, ok)
	assert.Equal(t, "が", tok.Surface)

	_, ok = FindTokenAt(tokens, 3)
	assert.False(t, ok)

	_, ok = FindTokenAt(tokens, -1)
	assert.False(t, ok)
}

func TestFindTokenAtEmpty(t *testing.T) {
	_, ok := FindTokenAt(nil, 0)
	assert.False(t, ok)
	_, ok = FindTokenAtSorted(nil, 0)
	assert.False(t, ok)
}

func TestFindTokenAtGap(t *testing.T) {
	// "猫  犬": two spaces are not tokens
	tokens := []Token{
		{Surface: "猫", Start: 0, Length: 1},
		{Surface: "犬", Start: 3, Length: 1},
	}
	_, ok := FindTokenAt(tokens, 2)
	assert.False(t, ok)
	_, ok = FindTokenAtSorted(tokens, 2)
	assert.False(t, ok)

	tok, ok := FindTokenAtSorted(tokens, 3)
	assert.True(t, ok)
	assert.Equal(t, "犬", tok.Surface)
}

func TestFindTokenAtSortedMatchesLinearScan(t *testing.T) {
	tokens := []Token{
		{Surface: "吾輩", Start: 0, Length: 2},
		{Surface: "は", Start: 2, Length: 1},
		{Surface: "猫", Start: 3, Length: 1},
		{Surface: "で", Start: 4, Length: 1},
		{Surface: "ある", Start: 5, Length: 2},
		{Surface: "名前", Start: 9, Length: 2},
		{Surface: "は", Start: 11, Length: 1},
		{Surface: "まだ", Start: 12, Length: 2},
		{Surface: "無い", Start: 14, Length: 2},
	}

	for offset := -2; offset <= 18; offset++ {
		want, wantOK := FindTokenAt(tokens, offset)
		got, gotOK := FindTokenAtSorted(tokens, offset)
		assert.Equal(t, wantOK, gotOK, "offset %d", offset)
		assert.Equal(t, want, got, "offset %d", offset)
	}
}

func TestTokensAt(t *testing.T) {
	tok, ok := neko().At(3)
	assert.True(t, ok)
	assert.Equal(t, "好き", tok.BaseForm)
	assert.Equal(t, Span{Start: 2, End: 4}, tok.Span())
}
