// Package rain implements the digital rain simulation: columns of
// random glyphs falling down the screen at independent speeds, colored
// by a green gradient that fades at the head and tail of each column.
package rain

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
)

// columnSpacing is the horizontal distance between column heads. Every
// glyph token is two cells wide, so adjacent columns touch but never
// overlap.
const columnSpacing = 2

// speedSpread is the ratio between the fastest and slowest column.
const speedSpread = 10

// Rain owns the palette and one column per horizontal slot and drives
// the whole animation one step per tick. It is the sole owner of all
// simulation state; nothing here is safe for concurrent use.
type Rain struct {
	screen      tcell.Screen
	palette     *Palette
	glyphs      *GlyphSource
	rng         *rand.Rand
	columns     []*Column
	minSpeed    float64
	latinChance float64
	tick        time.Duration
}

// New builds the palette from the screen's reported capabilities and
// populates the columns. Fails with ErrUnsupportedTerminal before any
// drawing when the terminal cannot display the gradient.
func New(screen tcell.Screen, rng *rand.Rand, minSpeed, latinChance float64, tick time.Duration) (*Rain, error) {
	width, height := screen.Size()
	palette, err := NewPalette(screen.Colors(), height)
	if err != nil {
		return nil, err
	}

	r := &Rain{
		screen:      screen,
		palette:     palette,
		glyphs:      NewGlyphSource(rng),
		rng:         rng,
		minSpeed:    minSpeed,
		latinChance: latinChance,
		tick:        tick,
	}
	for col := 0; col <= width-columnSpacing; col += columnSpacing {
		r.columns = append(r.columns, NewColumn(0, col, palette, r.glyphs, r.randomSpeed(), latinChance))
	}
	return r, nil
}

// Columns returns the number of falling columns.
func (r *Rain) Columns() int {
	return len(r.columns)
}

// Step runs one simulation tick: advance and draw every column, rebirth
// the ones that scrolled past the bottom edge, flush the frame and
// sleep the pacing interval.
func (r *Rain) Step() {
	for _, column := range r.columns {
		if !column.Step(r.screen) {
			column.Reset(r.randomSpeed(), r.glyphs)
		}
	}
	r.screen.Show()
	time.Sleep(r.tick)
}

// randomSpeed samples a fall speed uniformly from
// [minSpeed, speedSpread*minSpeed], in rows per step.
func (r *Rain) randomSpeed() float64 {
	return r.minSpeed + r.rng.Float64()*(speedSpread-1)*r.minSpeed
}
