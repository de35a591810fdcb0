package rain

import (
	"math/rand"
	"testing"
)

func newTestRain(t *testing.T, width, height int, minSpeed float64) *Rain {
	t.Helper()
	screen := newTestScreen(t, width, height)
	r, err := New(screen, rand.New(rand.NewSource(7)), minSpeed, DefaultLatinChance, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return r
}

// TestRainColumnSlots tests that one column is created per spacing slot
// across the screen width
func TestRainColumnSlots(t *testing.T) {
	r := newTestRain(t, 10, 24, 0.05)

	if r.Columns() != 5 {
		t.Fatalf("Expected 5 columns on a 10-cell screen, got %d", r.Columns())
	}
	for i, column := range r.columns {
		expected := i * columnSpacing
		if col := column.cells[0].col; col != expected {
			t.Errorf("Column %d: expected screen column %d, got %d", i, expected, col)
		}
		if len(column.cells) != r.palette.Len() {
			t.Errorf("Column %d: expected %d cells, got %d", i, r.palette.Len(), len(column.cells))
		}
	}
}

// TestRainSpeedRange tests that sampled speeds stay within
// [minSpeed, 10*minSpeed]
func TestRainSpeedRange(t *testing.T) {
	const minSpeed = 0.05
	r := newTestRain(t, 10, 24, minSpeed)

	for _, column := range r.columns {
		if column.speed < minSpeed || column.speed > speedSpread*minSpeed {
			t.Errorf("Column speed %f out of range [%f, %f]", column.speed, minSpeed, speedSpread*minSpeed)
		}
	}
	for i := 0; i < 1000; i++ {
		speed := r.randomSpeed()
		if speed < minSpeed || speed > speedSpread*minSpeed {
			t.Errorf("Sampled speed %f out of range [%f, %f]", speed, minSpeed, speedSpread*minSpeed)
		}
	}
}

// TestRainStepResetsExitedColumns tests the rebirth cycle: columns that
// scroll past the bottom edge are restaged above the top with a fresh
// speed instead of falling forever
func TestRainStepResetsExitedColumns(t *testing.T) {
	const height = 8
	r := newTestRain(t, 4, height, 1.0)

	// Enough steps for even the slowest column to exit several times
	for i := 0; i < 20*(height+r.palette.Len()); i++ {
		r.Step()
	}

	// Any head row beyond one full traversal means a column was never
	// reset after leaving the screen
	bound := float64(height+r.palette.Len()) * speedSpread
	for i, column := range r.columns {
		if head := column.cells[0].row; head > bound {
			t.Errorf("Column %d head at row %f, was never reset", i, head)
		}
	}
}

// TestRainStepKeepsColorBinding tests that driving the full simulation
// never disturbs any column's depth-to-color assignment
func TestRainStepKeepsColorBinding(t *testing.T) {
	r := newTestRain(t, 6, 5, 1.2)

	for i := 0; i < 200; i++ {
		r.Step()
	}
	for i, column := range r.columns {
		for dy, cell := range column.cells {
			if cell.style != r.palette.Level(dy) {
				t.Errorf("Column %d cell %d lost its palette binding", i, dy)
			}
		}
	}
}
