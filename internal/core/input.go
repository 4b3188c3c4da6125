package core

import "strings"

// Direction is the heading of the snake.
// DirNone is only observed before the first accepted intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Delta returns the per-tick pixel offset for this direction.
func (d Direction) Delta(cellSize int) (dx, dy int) {
	switch d {
	case DirLeft:
		return -cellSize, 0
	case DirRight:
		return cellSize, 0
	case DirUp:
		return 0, -cellSize
	case DirDown:
		return 0, cellSize
	default:
		return 0, 0
	}
}

// ParseIntent maps a raw input symbol to a direction.
// Browser key codes (ArrowLeft), terminal key names (left) and the usual
// wasd/vim letters are accepted. Unrecognized symbols return ok=false and are
// meant to be ignored by callers.
func ParseIntent(symbol string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(symbol)) {
	case "arrowleft", "left", "a", "h":
		return DirLeft, true
	case "arrowright", "right", "d", "l":
		return DirRight, true
	case "arrowup", "up", "w", "k":
		return DirUp, true
	case "arrowdown", "down", "s", "j":
		return DirDown, true
	}
	return DirNone, false
}

// Turn records a directional intent received after Tick ticks had completed.
// A run's turns plus its seed are enough to re-simulate it.
type Turn struct {
	Tick uint64
	Dir  Direction
}
