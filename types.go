package novelwriting

// PartOfSpeech is the closed set of grammatical categories the style
// statistics distinguish. Any tag the tokenizer reports outside the four named
// categories is folded into Other.
type PartOfSpeech int

const (
	Other PartOfSpeech = iota
	Noun
	Verb
	Adjective
	Adverb
)

// NamedPartsOfSpeech lists the categories that get a direct count-based ratio.
// Other is always the residual.
var NamedPartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb}

// String returns the Japanese grammatical term for the category
func (pos PartOfSpeech) String() string {
	switch pos {
	case Noun:
		return "名詞"
	case Verb:
		return "動詞"
	case Adjective:
		return "形容詞"
	case Adverb:
		return "副詞"
	}
	return "その他"
}

// MarshalText makes digests and tokens readable when encoded to JSON.
func (pos PartOfSpeech) MarshalText() ([]byte, error) {
	return []byte(pos.String()), nil
}

// UnmarshalText is the inverse of MarshalText; unknown terms become Other.
func (pos *PartOfSpeech) UnmarshalText(b []byte) error {
	*pos = ParsePartOfSpeech(string(b))
	return nil
}

// ParsePartOfSpeech maps a raw tokenizer tag (the first POS feature) to the
// closed enumeration.
func ParsePartOfSpeech(tag string) PartOfSpeech {
	switch tag {
	case "名詞":
		return Noun
	case "動詞":
		return Verb
	case "形容詞":
		return Adjective
	case "副詞":
		return Adverb
	}
	return Other
}

// Token is a single morpheme of the analyzed text.
// Start and Length are counted in runes.
type Token struct {
	Surface  string       `json:"surface"`   // Text as it appears in the document
	BaseForm string       `json:"base_form"` // Dictionary (citation) form
	Reading  string       `json:"reading"`   // Phonetic reading, usually katakana
	POS      PartOfSpeech `json:"pos"`
	Start    int          `json:"start"`
	Length   int          `json:"length"`
}

// End returns the offset right after the last character of the token.
func (t Token) End() int {
	return t.Start + t.Length
}

// Span returns the token's closed range [Start, Start+Length].
func (t Token) Span() Span {
	return Span{Start: t.Start, End: t.End()}
}

// Tokens is the ordered tokenization of a text.
type Tokens []Token

// Span is a rune range of a line or document, used as hover range and as
// completion replacement range.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Contains reports whether offset lies within the span, both ends included.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset <= s.End
}

// ThesaurusEntry is one row of the synonym dictionary.
type ThesaurusEntry struct {
	Section     string `json:"section"`      // 意味大分類
	MidItem     string `json:"mid_item"`     // 意味中分類
	SmallItem   string `json:"small_item"`   // 意味小分類
	CaptionBody string `json:"caption_body"` // Headword
	Reading     string `json:"reading"`      // Hiragana reading
}

// StyleDigest is a snapshot of the style statistics of a document.
type StyleDigest struct {
	Length         int                      `json:"length"`
	DiversityRatio float64                  `json:"diversity_ratio"`
	POSRatios      map[PartOfSpeech]float64 `json:"pos_ratios"`
}

// Ratio returns the share of pos among all tokens.
func (d StyleDigest) Ratio(pos PartOfSpeech) float64 {
	return d.POSRatios[pos]
}

// HoverResult is what the editor shows when hovering a word.
type HoverResult struct {
	BaseForm string `json:"base_form"`
	Span     Span   `json:"span"`
}

// CompletionItem is a single synonym suggestion.
type CompletionItem struct {
	Label      string `json:"label"`       // "<caption> (<reading>)"
	InsertText string `json:"insert_text"` // The synonym itself
	Detail     string `json:"detail"`      // Semantic classification, one per line
	Range      Span   `json:"range"`       // Span of the word being replaced
}

// StatusLine is the rendered style digest for a status bar.
type StatusLine struct {
	Ready   bool   `json:"ready"`
	Text    string `json:"text"`
	Tooltip string `json:"tooltip,omitempty"`
}
