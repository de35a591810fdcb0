package rain

import (
	"math/rand"

	"github.com/mattn/go-runewidth"
)

// DefaultLatinChance is the weight of Latin pair tokens in the glyph
// stream. Latin characters are narrow, so they are drawn in pairs to
// match the two-cell width of the CJK glyphs.
const DefaultLatinChance = 0.6

var latinRunes = []rune(
	"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~")

// wideRunes pools Katakana, Hiragana and Kangxi radical code points into
// one uniform distribution. All of them render two cells wide.
var wideRunes = func() []rune {
	ranges := []struct{ lo, hi rune }{
		{0x30A0, 0x30FE}, // Katakana
		{0x3041, 0x3096}, // Hiragana
		{0x2F00, 0x2FD4}, // Kangxi radicals
	}
	var runes []rune
	for _, r := range ranges {
		for c := r.lo; c <= r.hi; c++ {
			runes = append(runes, c)
		}
	}
	return runes
}()

// Token is one immutable display unit occupying two terminal cells:
// either a pair of narrow runes or a single double-width glyph.
type Token struct {
	head rune
	tail rune // 0 when head is a double-width glyph
}

// Runes returns the runes of the token in drawing order.
func (t Token) Runes() []rune {
	if t.tail == 0 {
		return []rune{t.head}
	}
	return []rune{t.head, t.tail}
}

// Width returns the display width of the token in cells.
func (t Token) Width() int {
	if t.tail != 0 {
		return 2
	}
	return runewidth.RuneWidth(t.head)
}

// GlyphSource draws random display tokens from a seedable generator.
type GlyphSource struct {
	rng *rand.Rand
}

// NewGlyphSource creates a glyph source backed by rng.
func NewGlyphSource(rng *rand.Rand) *GlyphSource {
	return &GlyphSource{rng: rng}
}

// Next draws one token. With probability latinChance the token is two
// independent Latin/digit/punctuation runes, otherwise one wide glyph.
func (g *GlyphSource) Next(latinChance float64) Token {
	if g.rng.Float64() < latinChance {
		return Token{
			head: latinRunes[g.rng.Intn(len(latinRunes))],
			tail: latinRunes[g.rng.Intn(len(latinRunes))],
		}
	}
	return Token{head: wideRunes[g.rng.Intn(len(wideRunes))]}
}
