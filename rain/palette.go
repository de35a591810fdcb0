package rain

import (
	"errors"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrUnsupportedTerminal reports a terminal that cannot display the
// palette. Checked once at startup, before any animation state exists.
var ErrUnsupportedTerminal = errors.New("terminal does not support enough colors")

// maxGreens caps the number of distinct brightness levels. More than 8
// adds no visible detail to the fade.
const maxGreens = 8

// Palette is an ordered sequence of color levels, brightest first. The
// raw green gradient is stretched around its midpoint so that a column
// colored by depth shows a short bright fade-in at the head, a solid
// bright body spanning the screen, and a short fade-out at the tail.
type Palette struct {
	levels []tcell.Style
}

// NewPalette builds the stretched palette for a terminal reporting the
// given color count and a screen of screenHeight rows. All styles are
// materialized here, before anything is drawn.
func NewPalette(colors, screenHeight int) (*Palette, error) {
	if colors < 2 {
		return nil, ErrUnsupportedTerminal
	}

	n := colors - 1
	if n > maxGreens {
		n = maxGreens
	}

	// Brightness descends from full green, never reaching pure black.
	greens := make([]tcell.Style, n)
	for i := range greens {
		c := colorful.Color{G: 1.0 - float64(i)/float64(n)}
		r, g, b := c.Clamped().RGB255()
		fg := tcell.NewRGBColor(int32(r), int32(g), int32(b))
		greens[i] = tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
	}

	// Stretch: keep the fading edges short, repeat the midpoint color
	// once per screen row for the constant bright body.
	mid := n / 2
	levels := make([]tcell.Style, 0, n-1+screenHeight)
	levels = append(levels, greens[:mid]...)
	for i := 0; i < screenHeight; i++ {
		levels = append(levels, greens[mid])
	}
	levels = append(levels, greens[mid+1:]...)

	return &Palette{levels: levels}, nil
}

// Len returns the number of color levels, which is also the cell count
// of every column.
func (p *Palette) Len() int {
	return len(p.levels)
}

// Level returns the style for a given depth from the column head.
// Depth 0 is brightest.
func (p *Palette) Level(depth int) tcell.Style {
	return p.levels[depth]
}
