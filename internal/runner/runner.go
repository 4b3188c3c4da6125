// Package runner drives a single engine instance on a fixed tick interval.
// It is the one place where intents and ticks meet, so a Game is never
// touched by more than one goroutine.
package runner

import (
	"context"
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// DefaultInterval is used when a runner is created with a non-positive interval.
const DefaultInterval = 100 * time.Millisecond

// Runner owns a started game and advances it from its own goroutine.
type Runner struct {
	id       RunID
	game     registry.Game
	sink     Sink
	interval time.Duration

	turns chan core.Direction

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a runner for an already started game.
// sink may be nil when nobody watches the run.
func New(id RunID, game registry.Game, interval time.Duration, sink Sink) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{
		id:       id,
		game:     game,
		sink:     sink,
		interval: interval,
		turns:    make(chan core.Direction, 32),
		done:     make(chan struct{}),
	}
}

// ID returns the run identifier.
func (r *Runner) ID() RunID {
	return r.id
}

// Turn queues a directional intent for the next tick.
// Non-blocking; intents are dropped when the queue is full.
func (r *Runner) Turn(d core.Direction) {
	select {
	case r.turns <- d:
	default:
	}
}

// Run is the dispatch loop. It returns on game over, Stop, context
// cancellation or when the sink closes. onComplete, if set, is called once
// with the final result before Run returns.
func (r *Runner) Run(ctx context.Context, onComplete func(Result)) Result {
	defer r.Stop()

	r.emit(SnapshotEvent{RunID: r.id, Snapshot: r.game.Snapshot()})
	if r.game.State().GameOver {
		return r.finish(StopGameOver, onComplete)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var sinkDone <-chan struct{}
	if r.sink != nil {
		sinkDone = r.sink.Done()
	}

	for {
		select {
		case d := <-r.turns:
			r.game.Turn(d)

		case <-ticker.C:
			r.drainTurns()
			res := r.game.Step()
			r.emit(SnapshotEvent{RunID: r.id, Snapshot: res.Snapshot})
			if res.State.GameOver {
				return r.finish(StopGameOver, onComplete)
			}

		case <-ctx.Done():
			return r.finish(StopCancelled, onComplete)

		case <-sinkDone:
			return r.finish(StopRequested, onComplete)

		case <-r.done:
			return r.finish(StopRequested, onComplete)
		}
	}
}

// drainTurns applies every intent queued before this tick, in arrival order.
func (r *Runner) drainTurns() {
	for {
		select {
		case d := <-r.turns:
			r.game.Turn(d)
		default:
			return
		}
	}
}

func (r *Runner) finish(stop StopReason, onComplete func(Result)) Result {
	res := Result{
		RunID:    r.id,
		GameID:   r.game.ID(),
		Stop:     stop,
		Snapshot: r.game.Snapshot(),
		Turns:    r.game.Turns(),
		Err:      r.game.Err(),
	}
	r.emit(RunEndedEvent{Result: res})
	if onComplete != nil {
		onComplete(res)
	}
	return res
}

func (r *Runner) emit(evt Event) {
	if r.sink != nil {
		r.sink.Send(evt)
	}
}

// Stop ends the loop. Safe to call multiple times and from any goroutine.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() {
		close(r.done)
	})
}

// Done returns a channel closed once the runner has been stopped.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
