package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSnakeStationaryWithoutDirection(t *testing.T) {
	s := NewSnake(core.Cell{X: 0, Y: 0}, 20)
	s.MoveForward()

	if s.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Errorf("Head should stay at origin without a direction, got %v", s.Head())
	}
	if s.Len() != 1 {
		t.Errorf("Length should stay 1, got %d", s.Len())
	}
}

func TestSnakeMoveRight(t *testing.T) {
	s := NewSnake(core.Cell{X: 0, Y: 0}, 20)
	s.Turn(core.DirRight)

	dx, dy := s.Delta()
	if dx != 20 || dy != 0 {
		t.Fatalf("Delta after Right = (%d, %d), expected (20, 0)", dx, dy)
	}

	s.MoveForward()
	body := s.Body()
	if len(body) != 1 || body[0] != (core.Cell{X: 20, Y: 0}) {
		t.Errorf("Body after move = %v, expected [{20 0}]", body)
	}
	if s.Heading() != core.DirRight {
		t.Errorf("Heading = %v, expected right", s.Heading())
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	tests := []struct {
		name     string
		setup    []core.Direction // Turns applied before the first move
		move     bool             // Move once after setup
		turns    []core.Direction // Turns applied after the optional move
		expected core.Direction
	}{
		{
			name:     "reverse pending before any move",
			setup:    []core.Direction{core.DirRight},
			turns:    []core.Direction{core.DirLeft},
			expected: core.DirRight,
		},
		{
			name:     "up then down before any move",
			setup:    []core.Direction{core.DirUp},
			turns:    []core.Direction{core.DirDown},
			expected: core.DirUp,
		},
		{
			name:     "fold back through a perpendicular turn",
			setup:    []core.Direction{core.DirRight},
			move:     true,
			turns:    []core.Direction{core.DirUp, core.DirLeft},
			expected: core.DirUp,
		},
		{
			name:     "burst ends on its last accepted turn",
			setup:    []core.Direction{core.DirRight},
			move:     true,
			turns:    []core.Direction{core.DirUp, core.DirLeft, core.DirRight},
			expected: core.DirRight,
		},
		{
			name:     "perpendicular turn accepted",
			setup:    []core.Direction{core.DirRight},
			move:     true,
			turns:    []core.Direction{core.DirDown},
			expected: core.DirDown,
		},
		{
			name:     "none is ignored",
			setup:    []core.Direction{core.DirLeft},
			turns:    []core.Direction{core.DirNone},
			expected: core.DirLeft,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(core.Cell{X: 100, Y: 100}, 20)
			for _, d := range tc.setup {
				s.Turn(d)
			}
			if tc.move {
				s.MoveForward()
			}
			for _, d := range tc.turns {
				s.Turn(d)
			}
			if s.Direction() != tc.expected {
				t.Errorf("Direction() = %v, expected %v", s.Direction(), tc.expected)
			}
		})
	}
}

func TestSnakeGrowthIsBoolean(t *testing.T) {
	s := NewSnake(core.Cell{X: 0, Y: 0}, 20)
	s.Turn(core.DirDown)

	// Two marks before one move grow once
	s.MarkFoodEaten()
	s.MarkFoodEaten()
	s.MoveForward()
	if s.Len() != 2 {
		t.Fatalf("Length after growth = %d, expected 2", s.Len())
	}
	if s.Growing() {
		t.Error("Growth flag should clear after the move")
	}

	s.MoveForward()
	if s.Len() != 2 {
		t.Errorf("Length should stay 2 without new food, got %d", s.Len())
	}

	expected := []core.Cell{{X: 0, Y: 40}, {X: 0, Y: 20}}
	body := s.Body()
	for i := range expected {
		if body[i] != expected[i] {
			t.Errorf("body[%d] = %v, expected %v", i, body[i], expected[i])
		}
	}
}

func TestSnakeHasHitWall(t *testing.T) {
	b := core.NewBounds(20, 25, 25)

	tests := []struct {
		name     string
		head     core.Cell
		expected bool
	}{
		{"origin", core.Cell{X: 0, Y: 0}, false},
		{"last column", core.Cell{X: 480, Y: 0}, false},
		{"right wall", core.Cell{X: 500, Y: 0}, true},
		{"bottom wall", core.Cell{X: 0, Y: 500}, true},
		{"left wall", core.Cell{X: -20, Y: 0}, true},
		{"top wall", core.Cell{X: 0, Y: -20}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSnake(tc.head, 20)
			if got := s.HasHitWall(b); got != tc.expected {
				t.Errorf("HasHitWall() with head %v = %v, expected %v", tc.head, got, tc.expected)
			}
		})
	}
}

func TestSnakeHasHitSelf(t *testing.T) {
	s := &Snake{
		body: []core.Cell{
			{X: 20, Y: 20}, // Head
			{X: 20, Y: 40},
			{X: 40, Y: 40},
			{X: 20, Y: 20},
		},
		cellSize: 20,
	}
	if !s.HasHitSelf() {
		t.Error("Head matching a later body cell should be a self hit")
	}

	s.body[3] = core.Cell{X: 40, Y: 20}
	if s.HasHitSelf() {
		t.Error("Distinct cells should not be a self hit")
	}

	single := NewSnake(core.Cell{X: 0, Y: 0}, 20)
	if single.HasHitSelf() {
		t.Error("Single-cell snake cannot hit itself")
	}
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(core.Cell{X: 0, Y: 0}, 20)
	body := s.Body()
	body[0] = core.Cell{X: 99, Y: 99}

	if s.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Error("Mutating Body() result should not affect the snake")
	}
}

func TestSnakeFoldBackBurstMovesOnPendingTurn(t *testing.T) {
	s := NewSnake(core.Cell{X: 100, Y: 100}, 20)
	s.Turn(core.DirRight)
	s.MoveForward()

	// Up is accepted, Left reverses the heading and is dropped
	s.Turn(core.DirUp)
	s.Turn(core.DirLeft)
	s.MoveForward()

	if s.Head() != (core.Cell{X: 120, Y: 80}) {
		t.Errorf("Head after burst = %v, expected {120 80}", s.Head())
	}
	if s.Heading() != core.DirUp {
		t.Errorf("Heading = %v, expected up", s.Heading())
	}
}
