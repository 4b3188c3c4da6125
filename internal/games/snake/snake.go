package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snake is the player-controlled body. Fields stay unexported; the engine
// drives it only through the methods below.
type Snake struct {
	body     []core.Cell // Head at index 0
	cellSize int
	heading  core.Direction // Direction applied on the last move
	pending  core.Direction // Last accepted turn, applied on the next move
	growing  bool           // If true, don't remove tail on next move
}

// NewSnake creates a single-cell snake at the given position with no direction.
func NewSnake(start core.Cell, cellSize int) *Snake {
	return &Snake{
		body:     []core.Cell{start},
		cellSize: cellSize,
	}
}

// Turn queues a direction change for the next move.
// A request that reverses the queued direction or the current heading is
// dropped, so rapid left-up-right sequences between ticks cannot fold the
// snake back onto its neck. A burst between two moves ends on its last
// accepted turn: heading Right, the burst Up, Left leaves Up pending.
func (s *Snake) Turn(d core.Direction) {
	if d == core.DirNone {
		return
	}
	if d == s.pending.Opposite() || d == s.heading.Opposite() {
		return
	}
	s.pending = d
}

// Direction returns the direction the next move will use.
func (s *Snake) Direction() core.Direction {
	return s.pending
}

// Heading returns the direction applied on the last move.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Delta returns the per-tick offset of the queued direction.
func (s *Snake) Delta() (dx, dy int) {
	return s.pending.Delta(s.cellSize)
}

// NextHead returns where the head will be after the next move.
func (s *Snake) NextHead() core.Cell {
	dx, dy := s.Delta()
	return s.Head().Add(dx, dy)
}

// MoveForward advances the snake one tick. The tail is kept when growth is
// pending, which clears the flag.
func (s *Snake) MoveForward() {
	newHead := s.NextHead()
	s.heading = s.pending

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	if s.growing {
		s.growing = false
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// MarkFoodEaten schedules one cell of growth for the next move.
// Repeated calls before that move still grow by one.
func (s *Snake) MarkFoodEaten() {
	s.growing = true
}

// Growing reports whether the next move keeps the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// HasHitWall reports whether the head lies outside the grid.
func (s *Snake) HasHitWall(b core.Bounds) bool {
	return !b.Contains(s.Head())
}

// HasHitSelf reports whether any non-head cell matches the head.
func (s *Snake) HasHitSelf() bool {
	head := s.Head()
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// HasReached reports whether the head is on the given cell.
func (s *Snake) HasReached(c core.Cell) bool {
	return s.Head() == c
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}
