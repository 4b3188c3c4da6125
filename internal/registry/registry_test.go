package registry_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func runConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	cfg.TickInterval = 50 * time.Millisecond
	return cfg
}

func TestListAndExists(t *testing.T) {
	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("Expected at least 2 registered games, got %d", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	for _, id := range []string{"snake", "snake_origin"} {
		if !registry.Exists(id) {
			t.Errorf("Exists(%q) = false", id)
		}
	}
	if registry.Exists("tetris") {
		t.Error("Exists(\"tetris\") = true")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := registry.Create("tetris"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
	if _, err := registry.NewRun("tetris", runConfig(1)); err == nil {
		t.Error("NewRun() of unknown game should fail")
	}
}

func TestNewRunIsFresh(t *testing.T) {
	cfg := runConfig(7)

	first, err := registry.NewRun("snake_origin", cfg)
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	first.Turn(core.DirRight)
	for range 3 {
		first.Step()
	}

	second, err := registry.NewRun("snake_origin", cfg)
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}
	if first == second {
		t.Fatal("NewRun() returned the same instance")
	}

	snap := second.Snapshot()
	if snap.Tick != 0 || snap.Score != 0 || snap.Phase != core.PhaseRunning {
		t.Errorf("Fresh run snapshot = %+v", snap)
	}
	if snap.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Errorf("Fresh run head = %v, expected origin", snap.Head())
	}
	if len(second.Turns()) != 0 {
		t.Errorf("Fresh run has %d journaled turns", len(second.Turns()))
	}
}

func TestReplayMatchesLiveRun(t *testing.T) {
	cfg := runConfig(42)
	live, err := registry.NewRun("snake", cfg)
	if err != nil {
		t.Fatalf("NewRun() failed: %v", err)
	}

	script := map[int]core.Direction{
		0:  core.DirDown,
		3:  core.DirRight,
		6:  core.DirUp,
		7:  core.DirLeft, // Rejected reversal, still journaled
		10: core.DirLeft,
		14: core.DirDown,
	}

	var ticks uint64
	for i := 0; i < 60 && !live.State().GameOver; i++ {
		if d, ok := script[i]; ok {
			live.Turn(d)
		}
		live.Step()
		ticks++
	}

	got, err := registry.Replay("snake", cfg, live.Turns(), ticks)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if !reflect.DeepEqual(got, live.Snapshot()) {
		t.Errorf("Replay snapshot differs:\n got %+v\nwant %+v", got, live.Snapshot())
	}
}

func TestReplayUnknownGame(t *testing.T) {
	if _, err := registry.Replay("tetris", runConfig(1), nil, 10); err == nil {
		t.Error("Replay() of unknown game should fail")
	}
}
