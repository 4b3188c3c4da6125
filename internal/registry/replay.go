package registry

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Replayer re-simulates a recorded run one tick at a time. Turns are
// delivered before the tick whose index matches Turn.Tick, in their recorded
// order, exactly as the live dispatch loop applied them.
type Replayer struct {
	game  Game
	turns []core.Turn
	next  int
	ticks uint64
}

// NewReplayer starts a fresh game for a recorded run. ticks is the number of
// steps the run lasted.
func NewReplayer(id string, cfg core.RuntimeConfig, turns []core.Turn, ticks uint64) (*Replayer, error) {
	g, err := NewRun(id, cfg)
	if g == nil {
		return nil, fmt.Errorf("registry: replay: %w", err)
	}
	return &Replayer{game: g, turns: turns, ticks: ticks}, nil
}

// Game returns the game being replayed, for rendering.
func (r *Replayer) Game() Game {
	return r.game
}

// Done reports whether the recorded run has been fully re-simulated.
func (r *Replayer) Done() bool {
	return r.game.State().GameOver || r.game.Snapshot().Tick >= r.ticks
}

// Step applies the turns due before the next tick and advances one tick.
// It is a no-op once Done.
func (r *Replayer) Step() core.StepResult {
	if r.Done() {
		return core.StepResult{State: r.game.State(), Snapshot: r.game.Snapshot()}
	}
	tick := r.game.Snapshot().Tick
	for r.next < len(r.turns) && r.turns[r.next].Tick <= tick {
		r.game.Turn(r.turns[r.next].Dir)
		r.next++
	}
	return r.game.Step()
}

// Replay re-simulates a recorded run to its end and returns the final
// snapshot. Terminal conditions, including an exhausted grid, are reported
// through the snapshot rather than as errors.
func Replay(id string, cfg core.RuntimeConfig, turns []core.Turn, ticks uint64) (core.Snapshot, error) {
	r, err := NewReplayer(id, cfg, turns, ticks)
	if err != nil {
		return core.Snapshot{}, err
	}
	for !r.Done() {
		r.Step()
	}
	return r.game.Snapshot(), nil
}
