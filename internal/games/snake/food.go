package snake

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridExhausted is returned when no free cell is left for food.
var ErrGridExhausted = errors.New("snake: grid exhausted, no free cell for food")

// Food is the single active item on the board.
type Food struct {
	location    core.Cell
	placed      bool
	maxAttempts int
}

// NewFood creates unplaced food. maxAttempts bounds random sampling before
// Place falls back to scanning; 0 means four samples per grid cell.
func NewFood(maxAttempts int) *Food {
	return &Food{maxAttempts: maxAttempts}
}

// Location returns the food cell and whether it has been placed.
func (f *Food) Location() (core.Cell, bool) {
	return f.location, f.placed
}

// Place moves the food to a uniformly random cell not in occupied.
// Random sampling is tried first; when it runs out of attempts the remaining
// free cells are collected and one is picked, so Place always terminates.
// On a full grid the food is removed and ErrGridExhausted is returned.
func (f *Food) Place(b core.Bounds, occupied []core.Cell, rng *rand.Rand) (core.Cell, error) {
	taken := make(map[core.Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	attempts := f.maxAttempts
	if attempts <= 0 {
		attempts = 4 * b.CellCount()
	}

	for range attempts {
		c := b.CellAt(rng.Intn(b.WidthCells), rng.Intn(b.HeightCells))
		if _, ok := taken[c]; !ok {
			return f.set(c), nil
		}
	}

	var free []core.Cell
	for row := range b.HeightCells {
		for col := range b.WidthCells {
			c := b.CellAt(col, row)
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		f.placed = false
		return core.Cell{}, ErrGridExhausted
	}
	return f.set(free[rng.Intn(len(free))]), nil
}

func (f *Food) set(c core.Cell) core.Cell {
	f.location = c
	f.placed = true
	return c
}
