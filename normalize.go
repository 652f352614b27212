package novelwriting

import (
	"strings"
	"unicode"
)

// katakanaToHiragana maps each katakana syllable, including voiced,
// semi-voiced and small forms, to its hiragana counterpart.
// The prolonged sound mark ー and the iteration marks are not in the table.
var katakanaToHiragana = map[rune]rune{
	'ァ': 'ぁ', 'ア': 'あ', 'ィ': 'ぃ', 'イ': 'い', 'ゥ': 'ぅ', 'ウ': 'う',
	'ェ': 'ぇ', 'エ': 'え', 'ォ': 'ぉ', 'オ': 'お', 'カ': 'か', 'ガ': 'が',
	'キ': 'き', 'ギ': 'ぎ', 'ク': 'く', 'グ': 'ぐ', 'ケ': 'け', 'ゲ': 'げ',
	'コ': 'こ', 'ゴ': 'ご', 'サ': 'さ', 'ザ': 'ざ', 'シ': 'し', 'ジ': 'じ',
	'ス': 'す', 'ズ': 'ず', 'セ': 'せ', 'ゼ': 'ぜ', 'ソ': 'そ', 'ゾ': 'ぞ',
	'タ': 'た', 'ダ': 'だ', 'チ': 'ち', 'ヂ': 'ぢ', 'ッ': 'っ', 'ツ': 'つ',
	'ヅ': 'づ', 'テ': 'て', 'デ': 'で', 'ト': 'と', 'ド': 'ど', 'ナ': 'な',
	'ニ': 'に', 'ヌ': 'ぬ', 'ネ': 'ね', 'ノ': 'の', 'ハ': 'は', 'バ': 'ば',
	'パ': 'ぱ', 'ヒ': 'ひ', 'ビ': 'び', 'ピ': 'ぴ', 'フ': 'ふ', 'ブ': 'ぶ',
	'プ': 'ぷ', 'ヘ': 'へ', 'ベ': 'べ', 'ペ': 'ぺ', 'ホ': 'ほ', 'ボ': 'ぼ',
	'ポ': 'ぽ', 'マ': 'ま', 'ミ': 'み', 'ム': 'む', 'メ': 'め', 'モ': 'も',
	'ャ': 'ゃ', 'ヤ': 'や', 'ュ': 'ゅ', 'ユ': 'ゆ', 'ョ': 'ょ', 'ヨ': 'よ',
	'ラ': 'ら', 'リ': 'り', 'ル': 'る', 'レ': 'れ', 'ロ': 'ろ', 'ヮ': 'ゎ',
	'ワ': 'わ', 'ヰ': 'ゐ', 'ヱ': 'ゑ', 'ヲ': 'を', 'ン': 'ん', 'ヴ': 'ゔ',
	'ヵ': 'ゕ', 'ヶ': 'ゖ',
}

// NormalizeReading folds a phonetic reading to hiragana, character by
// character. Characters outside the katakana table are passed through
// unchanged, so the function is total and idempotent.
func NormalizeReading(reading string) string {
	if !ContainsKatakana(reading) {
		return reading
	}

	var b strings.Builder
	b.Grow(len(reading))
	for _, r := range reading {
		if h, ok := katakanaToHiragana[r]; ok {
			b.WriteRune(h)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ContainsKatakana checks if a string contains any katakana characters
func ContainsKatakana(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Katakana, r) {
			return true
		}
	}
	return false
}

// ContainsKanjis checks if a string contains any kanji characters
func ContainsKanjis(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}
