package rain

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one positioned glyph slot within a Column. Its style is fixed
// at creation by its depth from the column head; only the row and the
// glyph change over the cell's lifetime.
type Cell struct {
	row   float64
	col   int
	glyph Token
	style tcell.Style
}

// Column is an ordered run of cells falling together at one constant
// speed. cells[0] is the head (largest row); deeper cells trail above it.
type Column struct {
	cells       []Cell
	speed       float64
	width       int
	latinChance float64
}

// NewColumn creates a column with its head at (headRow, col) and one
// cell per palette level staggered upward, so the column enters the
// screen from the top edge instead of materializing all at once.
func NewColumn(headRow, col int, palette *Palette, glyphs *GlyphSource, speed, latinChance float64) *Column {
	cells := make([]Cell, palette.Len())
	for dy := range cells {
		cells[dy] = Cell{
			row:   float64(headRow - dy),
			col:   col,
			glyph: glyphs.Next(latinChance),
			style: palette.Level(dy),
		}
	}
	return &Column{cells: cells, speed: speed, width: columnSpacing, latinChance: latinChance}
}

// Step advances every cell by the column speed and draws the ones whose
// truncated position is on screen, then erases the trailing band above
// the topmost cell. Returns false once no cell is visible, which means
// the whole column has scrolled past the bottom edge.
func (c *Column) Step(screen tcell.Screen) bool {
	_, height := screen.Size()
	visible := false
	row, col := -1, -1
	for i := range c.cells {
		cell := &c.cells[i]
		// Truncate before advancing; the drawn position is the
		// pre-advance one and the erase sweep depends on it.
		row, col = int(cell.row), cell.col
		cell.row += c.speed
		if row < 0 || row >= height {
			continue
		}
		visible = true
		drawToken(screen, col, row, cell.glyph, cell.style)
	}

	// Erase the trail above the topmost cell up to the screen edge.
	// Anything there is a leftover from this column's previous pass.
	for row--; row >= 0 && row < height; row-- {
		for dx := 0; dx < c.width; dx++ {
			screen.SetContent(col+dx, row, ' ', nil, tcell.StyleDefault)
		}
	}
	return visible
}

// Reset restages the column above the top edge with a new speed and a
// fresh glyph per cell. Depth-to-color binding is permanent, so styles
// are left untouched.
func (c *Column) Reset(speed float64, glyphs *GlyphSource) {
	c.speed = speed
	for dy := range c.cells {
		c.cells[dy].row = float64(-dy)
		c.cells[dy].glyph = glyphs.Next(c.latinChance)
	}
}

// drawToken writes one token at (col, row), advancing by each rune's
// display width so narrow pairs sit side by side and wide glyphs keep
// both of their cells.
func drawToken(screen tcell.Screen, col, row int, t Token, style tcell.Style) {
	for _, r := range t.Runes() {
		screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
