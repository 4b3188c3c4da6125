package runner

import "github.com/vovakirdan/tui-snake/internal/core"

// RunID uniquely identifies a single run from start to game over.
type RunID string

// Event is something a runner reports to its sink.
type Event interface {
	runEvent()
}

// SnapshotEvent carries the state after a tick. The first one is sent before
// any tick so front ends can draw the starting board.
type SnapshotEvent struct {
	RunID    RunID
	Snapshot core.Snapshot
}

func (SnapshotEvent) runEvent() {}

// RunEndedEvent is sent once when the run stops for any reason.
type RunEndedEvent struct {
	Result Result
}

func (RunEndedEvent) runEvent() {}

// StopReason describes why a runner loop returned.
type StopReason int

const (
	StopGameOver  StopReason = iota // Engine reached game over
	StopRequested                   // Stop was called
	StopCancelled                   // Context was cancelled
)

func (r StopReason) String() string {
	switch r {
	case StopGameOver:
		return "game over"
	case StopRequested:
		return "stopped"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Result contains the outcome of a finished run.
type Result struct {
	RunID    RunID
	GameID   string
	Stop     StopReason
	Snapshot core.Snapshot
	Turns    []core.Turn
	Err      error // Fatal engine condition, e.g. an exhausted grid
}
