package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Every field is fixed for the duration of a run.
type RuntimeConfig struct {
	CellSize     int           // Pixels per grid cell
	WidthCells   int           // Grid width in cells
	HeightCells  int           // Grid height in cells
	TickInterval time.Duration // Fixed period between simulation ticks
	Player       string        // Display name shown next to the score
	Seed         int64         // RNG seed for deterministic gameplay
	FoodAttempts int           // Random samples before falling back to a scan (0 = 4 * cells)
}

// DefaultConfig returns a RuntimeConfig with the classic 25x25 board.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CellSize:     20,
		WidthCells:   25,
		HeightCells:  25,
		TickInterval: 100 * time.Millisecond,
		Player:       "player",
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Bounds returns the grid bounds described by this config.
func (c RuntimeConfig) Bounds() Bounds {
	return NewBounds(c.CellSize, c.WidthCells, c.HeightCells)
}

// Phase is the engine lifecycle state.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// EndReason explains why a run reached GameOver.
type EndReason string

const (
	ReasonNone          EndReason = ""
	ReasonWall          EndReason = "wall"
	ReasonSelf          EndReason = "self"
	ReasonGridExhausted EndReason = "grid_exhausted"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// Snapshot is the read-only view handed to render collaborators once per tick.
// Body is a copy; mutating it has no effect on the engine.
type Snapshot struct {
	Body     []Cell // Head first
	Food     Cell
	HasFood  bool
	Score    int
	Player   string
	Tick     uint64
	Phase    Phase
	GameOver bool
	Reason   EndReason
	Bounds   Bounds
}

// Head returns the head cell, or the zero cell for an empty body.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Snapshot Snapshot
}
