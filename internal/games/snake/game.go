// Package snake implements the snake simulation engine: a tick-driven state
// machine that moves the snake, grows it on food, places food and detects
// wall and self collisions.
package snake

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ErrInvalidConfig is returned by Reset for unusable grid or timing settings.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Mode selects where the snake starts.
type Mode string

const (
	ModeRandom Mode = "random" // Head starts on a random cell
	ModeOrigin Mode = "origin" // Head starts at (0, 0)
)

// Game is the snake engine. It owns exactly one Snake, Food and ScoreBoard;
// a restart builds a new Game rather than reusing this one.
type Game struct {
	mode   Mode
	cfg    core.RuntimeConfig
	bounds core.Bounds
	rng    *rand.Rand
	tick   uint64

	snake *Snake
	food  *Food
	board *ScoreBoard

	phase  core.Phase
	reason core.EndReason
	turns  []core.Turn
}

// New creates a random-start Snake game.
func New() *Game {
	return &Game{mode: ModeRandom}
}

// NewOrigin creates a Snake game whose head starts at the origin.
func NewOrigin() *Game {
	return &Game{mode: ModeOrigin}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_origin", func() registry.Game {
		return NewOrigin()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeOrigin {
		return "snake_origin"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeOrigin {
		return "Snake (Origin Start)"
	}
	return "Snake"
}

// Reset validates cfg and builds a fresh board. The game is Idle afterwards.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if !cfg.Bounds().Valid() {
		return fmt.Errorf("%w: grid %dx%d with cell size %d",
			ErrInvalidConfig, cfg.WidthCells, cfg.HeightCells, cfg.CellSize)
	}
	if cfg.TickInterval < 0 {
		return fmt.Errorf("%w: negative tick interval %s", ErrInvalidConfig, cfg.TickInterval)
	}

	g.cfg = cfg
	g.bounds = cfg.Bounds()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.phase = core.PhaseIdle
	g.reason = core.ReasonNone
	g.turns = nil

	start := core.Cell{}
	if g.mode == ModeRandom {
		start = g.bounds.CellAt(g.rng.Intn(g.bounds.WidthCells), g.rng.Intn(g.bounds.HeightCells))
	}
	g.snake = NewSnake(start, g.bounds.CellSize)
	g.food = NewFood(cfg.FoodAttempts)
	g.board = NewScoreBoard(cfg.Player)
	return nil
}

// Start performs the first food placement and moves Idle to Running.
// On a board with no free cell the game ends immediately and
// ErrGridExhausted is returned.
func (g *Game) Start() error {
	if g.phase != core.PhaseIdle {
		return nil
	}
	if _, err := g.food.Place(g.bounds, g.snake.Body(), g.rng); err != nil {
		g.end(core.ReasonGridExhausted)
		return err
	}
	g.phase = core.PhaseRunning
	return nil
}

// Turn delivers a directional intent. Intents after game over are dropped.
func (g *Game) Turn(d core.Direction) {
	if g.phase == core.PhaseGameOver || g.snake == nil {
		return
	}
	g.turns = append(g.turns, core.Turn{Tick: g.tick, Dir: d})
	g.snake.Turn(d)
}

// Step advances the game by one tick.
//
// Food is checked against the head as it stands before the move, so food
// reached on the previous tick is eaten now and the tail is kept by this
// tick's move. Collisions are checked after the move.
func (g *Game) Step() core.StepResult {
	if g.phase != core.PhaseRunning {
		return g.result()
	}
	g.tick++

	exhausted := false
	if loc, ok := g.food.Location(); ok && g.snake.HasReached(loc) {
		g.snake.MarkFoodEaten()
		g.board.Increment()

		// The next head is excluded too: it joins the body on this move.
		occupied := append(g.snake.Body(), g.snake.NextHead())
		if _, err := g.food.Place(g.bounds, occupied, g.rng); err != nil {
			exhausted = true
		}
	}

	g.snake.MoveForward()

	switch {
	case g.snake.HasHitWall(g.bounds):
		g.end(core.ReasonWall)
	case g.snake.HasHitSelf():
		g.end(core.ReasonSelf)
	case exhausted:
		g.end(core.ReasonGridExhausted)
	}

	return g.result()
}

func (g *Game) end(reason core.EndReason) {
	g.phase = core.PhaseGameOver
	g.reason = reason
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Snapshot: g.Snapshot()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Snapshot returns a copy of the state for rendering and replay checks.
func (g *Game) Snapshot() core.Snapshot {
	if g.snake == nil {
		return core.Snapshot{Phase: core.PhaseIdle}
	}
	food, placed := g.food.Location()
	return core.Snapshot{
		Body:     g.snake.Body(),
		Food:     food,
		HasFood:  placed,
		Score:    g.board.Score(),
		Player:   g.board.Player(),
		Tick:     g.tick,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
		Reason:   g.reason,
		Bounds:   g.bounds,
	}
}

// Turns returns a copy of every intent received so far.
func (g *Game) Turns() []core.Turn {
	out := make([]core.Turn, len(g.turns))
	copy(out, g.turns)
	return out
}

// Err returns ErrGridExhausted if the run ended on a full board.
// Wall and self collisions are ordinary endings and return nil.
func (g *Game) Err() error {
	if g.reason == core.ReasonGridExhausted {
		return ErrGridExhausted
	}
	return nil
}

// Config returns the config the game was reset with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	snap := g.Snapshot()
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Phase: %s\n", snap.Tick, snap.Score, snap.Phase)
	if g.snake != nil {
		fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Growing: %v\n",
			g.snake.Len(), g.snake.Direction(), g.snake.Growing())
	}
	head := snap.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d) placed=%v\n", head.X, head.Y, snap.Food.X, snap.Food.Y, snap.HasFood)
	if snap.Reason != core.ReasonNone {
		fmt.Fprintf(&b, "Reason: %s\n", snap.Reason)
	}
	return b.String()
}
