package novelwriting

import (
	"strings"
	"unicode/utf8"

	"github.com/tassa-yoniso-manasi-karoto/translitkit/common"
)

const (
	// Japanese punctuation never preceded by a space
	noSpaceBefore = "。、，．！？」』）】〉》・…"
	// and never followed by one
	noSpaceAfter = "。、，．！？「『（【〈《"
)

// japaneseSpacingRule is common.DefaultSpacingRule with full-width Japanese
// punctuation attached to its neighbours, the way it is typeset.
func japaneseSpacingRule(prev, current string) bool {
	if last, _ := utf8.DecodeLastRuneInString(prev); strings.ContainsRune(noSpaceAfter, last) {
		return false
	}
	if first, _ := utf8.DecodeRuneInString(current); strings.ContainsRune(noSpaceBefore, first) {
		return false
	}
	return common.DefaultSpacingRule(prev, current)
}

// JoinWithSpacingRule joins string slices using intelligent spacing rules
func JoinWithSpacingRule(parts []string) string {
	if len(parts) == 0 {
		return ""
	}

	if len(parts) == 1 {
		return parts[0]
	}

	var builder strings.Builder
	builder.WriteString(parts[0])

	for i := 1; i < len(parts); i++ {
		if japaneseSpacingRule(parts[i-1], parts[i]) {
			builder.WriteRune(' ')
		}
		builder.WriteString(parts[i])
	}

	return builder.String()
}

// Segmented returns the token surfaces separated by spaces, without spaces
// around Japanese punctuation. Handy to eyeball the tokenizer's segmentation.
func (tokens Tokens) Segmented() string {
	return JoinWithSpacingRule(tokens.Surfaces())
}
