package core

import "testing"

func TestBoundsContains(t *testing.T) {
	b := NewBounds(20, 25, 25)

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{"origin", Cell{0, 0}, true},
		{"last cell", Cell{480, 480}, true},
		{"right edge (exclusive)", Cell{500, 0}, false},
		{"bottom edge (exclusive)", Cell{0, 500}, false},
		{"left of grid", Cell{-20, 0}, false},
		{"above grid", Cell{0, -20}, false},
		{"inside", Cell{240, 100}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.cell); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestBoundsDimensions(t *testing.T) {
	b := NewBounds(20, 25, 10)

	if b.PixelWidth() != 500 {
		t.Errorf("PixelWidth() = %d, expected 500", b.PixelWidth())
	}
	if b.PixelHeight() != 200 {
		t.Errorf("PixelHeight() = %d, expected 200", b.PixelHeight())
	}
	if b.CellCount() != 250 {
		t.Errorf("CellCount() = %d, expected 250", b.CellCount())
	}
	if !b.Valid() {
		t.Error("Bounds should be valid")
	}
	if NewBounds(0, 5, 5).Valid() {
		t.Error("Zero cell size should be invalid")
	}
}

func TestBoundsCellConversion(t *testing.T) {
	b := NewBounds(20, 25, 25)

	c := b.CellAt(3, 7)
	if c != (Cell{60, 140}) {
		t.Errorf("CellAt(3, 7) = %v, expected {60 140}", c)
	}

	col, row := b.ColRow(c)
	if col != 3 || row != 7 {
		t.Errorf("ColRow(%v) = (%d, %d), expected (3, 7)", c, col, row)
	}

	col, row = b.ColRow(Cell{-20, -1})
	if col != -1 || row != -1 {
		t.Errorf("ColRow of negative cell = (%d, %d), expected (-1, -1)", col, row)
	}
}

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirLeft, -20, 0},
		{DirRight, 20, 0},
		{DirUp, 0, -20},
		{DirDown, 0, 20},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta(20)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("%v.Delta(20) = (%d, %d), expected (%d, %d)", tc.dir, dx, dy, tc.dx, tc.dy)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirNone:  DirNone,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
	}
}
