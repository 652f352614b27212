package novelwriting

import (
	"strings"
)

// Surfaces returns a slice of all token surfaces.
func (tokens Tokens) Surfaces() (parts []string) {
	for _, token := range tokens {
		parts = append(parts, token.Surface)
	}
	return
}

// BaseForms returns a slice of all token base forms.
func (tokens Tokens) BaseForms() (parts []string) {
	for _, token := range tokens {
		parts = append(parts, token.BaseForm)
	}
	return
}

// Kana returns the reading of the whole text in hiragana. Tokens without a
// reading (symbols, unknown words) contribute their surface.
func (tokens Tokens) Kana() string {
	return strings.Join(tokens.KanaParts(), "")
}

// KanaParts returns the hiragana reading of each token, or the surface when
// the tokenizer had no reading.
func (tokens Tokens) KanaParts() (parts []string) {
	for _, token := range tokens {
		if token.Reading != "" {
			parts = append(parts, NormalizeReading(token.Reading))
		} else {
			parts = append(parts, token.Surface)
		}
	}
	return
}

// Count returns how many tokens carry the given part of speech.
func (tokens Tokens) Count(pos PartOfSpeech) (n int) {
	for _, token := range tokens {
		if token.POS == pos {
			n++
		}
	}
	return
}

// At is FindTokenAt on the receiver.
func (tokens Tokens) At(offset int) (Token, bool) {
	return FindTokenAt(tokens, offset)
}
