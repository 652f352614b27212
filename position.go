package novelwriting

import (
	"slices"
	"sort"
)

// FindTokenAt returns the first token, in sequence order, whose closed span
// [Start, Start+Length] contains offset. The end boundary is inclusive: the
// position right after a token's last character still belongs to it, which
// means that at the boundary between two adjacent tokens the earlier one wins.
//
// The second return value is false when no token encloses the offset (an
// offset past the last token, a gap, or an empty sequence).
func FindTokenAt(tokens []Token, offset int) (Token, bool) {
	i := slices.IndexFunc(tokens, func(t Token) bool {
		return t.Span().Contains(offset)
	})
	if i < 0 {
		return Token{}, false
	}
	return tokens[i], true
}

// FindTokenAtSorted gives the same answer as FindTokenAt in O(log n) for
// well-formed tokenizations: Start non-decreasing and spans non-overlapping,
// which is what every Tokenizer produces. Use it on whole documents; for a
// single line FindTokenAt is just as fast.
func FindTokenAtSorted(tokens []Token, offset int) (Token, bool) {
	// first token that has not ended before offset
	i := sort.Search(len(tokens), func(i int) bool {
		return tokens[i].End() >= offset
	})
	if i == len(tokens) || tokens[i].Start > offset {
		return Token{}, false
	}
	return tokens[i], true
}
