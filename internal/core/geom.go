// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Cell is a grid position measured in pixel units aligned to the cell size.
// A cell at column 3, row 1 with a cell size of 20 is Cell{X: 60, Y: 20}.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Bounds describes the playable area: a fixed number of cells along each axis
// and the pixel size of a single cell.
type Bounds struct {
	CellSize    int // Pixels per grid cell
	WidthCells  int // Playable columns
	HeightCells int // Playable rows
}

// NewBounds creates bounds with the given cell size and dimensions.
func NewBounds(cellSize, widthCells, heightCells int) Bounds {
	return Bounds{CellSize: cellSize, WidthCells: widthCells, HeightCells: heightCells}
}

// Valid reports whether every dimension is positive.
func (b Bounds) Valid() bool {
	return b.CellSize > 0 && b.WidthCells > 0 && b.HeightCells > 0
}

// PixelWidth returns the exclusive upper bound of valid x coordinates.
func (b Bounds) PixelWidth() int {
	return b.WidthCells * b.CellSize
}

// PixelHeight returns the exclusive upper bound of valid y coordinates.
func (b Bounds) PixelHeight() int {
	return b.HeightCells * b.CellSize
}

// Contains returns true if the cell lies in [0, PixelWidth) x [0, PixelHeight).
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.PixelWidth() && c.Y >= 0 && c.Y < b.PixelHeight()
}

// CellCount returns the number of cells in the grid.
func (b Bounds) CellCount() int {
	return b.WidthCells * b.HeightCells
}

// CellAt converts column/row indices to a pixel-aligned cell.
func (b Bounds) CellAt(col, row int) Cell {
	return Cell{X: col * b.CellSize, Y: row * b.CellSize}
}

// ColRow converts a pixel-aligned cell back to column/row indices.
func (b Bounds) ColRow(c Cell) (int, int) {
	if b.CellSize <= 0 {
		return 0, 0
	}
	return floorDiv(c.X, b.CellSize), floorDiv(c.Y, b.CellSize)
}

// floorDiv divides rounding toward negative infinity, so out-of-bounds cells
// left of or above the grid map to negative indices.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
