package novelwriting

import (
	"fmt"
	"strings"
)

// StatusPlaceholder is shown while the tokenizer is not ready yet.
const StatusPlaceholder = "準備中..."

// AnalyzeStyle aggregates a tokenized document into style statistics.
// textLength is the character count of the original text, which is reported
// as is and does not depend on the tokenization.
//
// The diversity ratio is the share of distinct base forms that occur exactly
// once (hapax) among all distinct base forms. Note the denominator: this is
// not the classic type-token ratio, which divides by the token count.
//
// Noun, verb, adjective and adverb ratios are token counts over the total
// token count; Other is the residual 1 - (sum of the four), so the five
// ratios always sum to 1.
//
// ok is false for an empty tokenization: callers should treat it as
// "not ready" rather than as a zero digest.
func AnalyzeStyle(tokens []Token, textLength int) (digest StyleDigest, ok bool) {
	if len(tokens) == 0 {
		return StyleDigest{}, false
	}

	occurrences := make(map[string]int, len(tokens))
	counts := make(map[PartOfSpeech]int, len(NamedPartsOfSpeech))
	for _, t := range tokens {
		occurrences[t.BaseForm]++
		counts[t.POS]++
	}

	hapax := 0
	for _, n := range occurrences {
		if n == 1 {
			hapax++
		}
	}

	total := float64(len(tokens))
	ratios := make(map[PartOfSpeech]float64, len(NamedPartsOfSpeech)+1)
	other := 1.0
	for _, pos := range NamedPartsOfSpeech {
		r := float64(counts[pos]) / total
		ratios[pos] = r
		other -= r
	}
	ratios[Other] = other

	return StyleDigest{
		Length:         textLength,
		DiversityRatio: float64(hapax) / float64(len(occurrences)),
		POSRatios:      ratios,
	}, true
}

// RenderStatus formats a digest the way the status bar displays it:
// character count and diversity on the line, part-of-speech shares in the
// tooltip, percentages with two decimals.
func RenderStatus(d StyleDigest) StatusLine {
	var tooltip strings.Builder
	for _, pos := range NamedPartsOfSpeech {
		fmt.Fprintf(&tooltip, "%s率: %s%%\n", pos, formatPercent(d.Ratio(pos)))
	}
	fmt.Fprintf(&tooltip, "%s: %s%%", Other, formatPercent(d.Ratio(Other)))

	return StatusLine{
		Ready:   true,
		Text:    fmt.Sprintf("文字数: %d, 異なり形態素率: %s%%", d.Length, formatPercent(d.DiversityRatio)),
		Tooltip: tooltip.String(),
	}
}

// NotReadyStatus is the neutral status shown until a digest can be computed.
func NotReadyStatus() StatusLine {
	return StatusLine{Ready: false, Text: StatusPlaceholder}
}

func formatPercent(ratio float64) string {
	s := fmt.Sprintf("%.2f", ratio*100)
	// residuals like -0.0000000001 would otherwise print as -0.00
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
