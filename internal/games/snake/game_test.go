package snake

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		CellSize:     20,
		WidthCells:   25,
		HeightCells:  25,
		TickInterval: 100 * time.Millisecond,
		Player:       "tester",
		Seed:         seed,
	}
}

func startedGame(t *testing.T, g *Game, cfg core.RuntimeConfig) *Game {
	t.Helper()
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	return g
}

func TestPhases(t *testing.T) {
	g := NewOrigin()
	if err := g.Reset(testConfig(1)); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	if snap := g.Snapshot(); snap.Phase != core.PhaseIdle || snap.HasFood {
		t.Fatalf("After Reset phase = %s, hasFood = %v, expected idle without food", snap.Phase, snap.HasFood)
	}

	// Steps before Start are no-ops
	g.Step()
	if g.Snapshot().Tick != 0 {
		t.Error("Step in idle phase should not advance the tick")
	}

	if err := g.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}
	snap := g.Snapshot()
	if snap.Phase != core.PhaseRunning || !snap.HasFood {
		t.Fatalf("After Start phase = %s, hasFood = %v, expected running with food", snap.Phase, snap.HasFood)
	}
	if snap.Food == snap.Head() {
		t.Error("Initial food must not be on the snake")
	}
}

func TestFirstTickWithoutInput(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(2))

	res := g.Step()
	if res.Snapshot.Head() != (core.Cell{X: 0, Y: 0}) {
		t.Errorf("Head after first tick = %v, expected origin", res.Snapshot.Head())
	}
	if len(res.Snapshot.Body) != 1 {
		t.Errorf("Body length = %d, expected 1", len(res.Snapshot.Body))
	}
	if res.State.GameOver {
		t.Error("Game should not be over")
	}
}

func TestTurnRightAndTick(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(3))
	g.food.set(core.Cell{X: 200, Y: 200})

	g.Turn(core.DirRight)
	res := g.Step()

	if !reflect.DeepEqual(res.Snapshot.Body, []core.Cell{{X: 20, Y: 0}}) {
		t.Errorf("Body after tick = %v, expected [{20 0}]", res.Snapshot.Body)
	}
}

func TestReversalBeforeFirstMove(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(4))
	g.food.set(core.Cell{X: 200, Y: 200})

	g.Turn(core.DirRight)
	g.Turn(core.DirLeft)
	res := g.Step()

	if res.Snapshot.Head() != (core.Cell{X: 20, Y: 0}) {
		t.Errorf("Head = %v, expected reversal to be ignored and head at {20 0}", res.Snapshot.Head())
	}
}

func TestEatFood(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(5))
	g.food.set(core.Cell{X: 20, Y: 0})
	g.Turn(core.DirRight)

	// Head reaches the food cell
	res := g.Step()
	if res.Snapshot.Head() != (core.Cell{X: 20, Y: 0}) || res.State.Score != 0 {
		t.Fatalf("After first tick head = %v score = %d, expected {20 0} and 0", res.Snapshot.Head(), res.State.Score)
	}

	// Consumption is resolved on the following tick, before the move
	res = g.Step()
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", res.State.Score)
	}
	if len(res.Snapshot.Body) != 2 {
		t.Fatalf("Body length = %d, expected 2", len(res.Snapshot.Body))
	}
	expected := []core.Cell{{X: 40, Y: 0}, {X: 20, Y: 0}}
	if !reflect.DeepEqual(res.Snapshot.Body, expected) {
		t.Errorf("Body = %v, expected %v", res.Snapshot.Body, expected)
	}
	for _, c := range res.Snapshot.Body {
		if c == res.Snapshot.Food {
			t.Errorf("Food relocated onto the snake at %v", c)
		}
	}
}

func TestWallCollision(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(6))
	g.snake = NewSnake(core.Cell{X: 480, Y: 0}, 20)
	g.food.set(core.Cell{X: 0, Y: 100})

	g.Turn(core.DirRight)
	res := g.Step()

	if res.Snapshot.Head().X != 500 {
		t.Fatalf("Head x = %d, expected 500", res.Snapshot.Head().X)
	}
	if !res.State.GameOver || res.Snapshot.Reason != core.ReasonWall {
		t.Errorf("GameOver = %v, reason = %q, expected wall game over", res.State.GameOver, res.Snapshot.Reason)
	}
	if g.Err() != nil {
		t.Errorf("Wall hit is not a fatal error, got %v", g.Err())
	}

	// Terminal: further steps and turns do nothing
	tick := res.Snapshot.Tick
	g.Turn(core.DirDown)
	if g.Step().Snapshot.Tick != tick {
		t.Error("Step after game over should be a no-op")
	}
	if len(g.Turns()) != 1 {
		t.Errorf("Turns after game over should not be journaled, got %d", len(g.Turns()))
	}
}

func TestSelfCollision(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(7))
	g.snake = &Snake{
		body: []core.Cell{
			{X: 20, Y: 20}, // Head
			{X: 20, Y: 40},
			{X: 40, Y: 40},
			{X: 40, Y: 20},
			{X: 40, Y: 0},
		},
		cellSize: 20,
		heading:  core.DirUp,
		pending:  core.DirUp,
	}
	g.food.set(core.Cell{X: 200, Y: 200})

	// Moving right puts head at (40, 20), which stays occupied after the tail moves
	g.Turn(core.DirRight)
	res := g.Step()

	if !res.State.GameOver || res.Snapshot.Reason != core.ReasonSelf {
		t.Errorf("GameOver = %v, reason = %q, expected self game over", res.State.GameOver, res.Snapshot.Reason)
	}
}

func TestGridExhaustedAtStart(t *testing.T) {
	cfg := testConfig(8)
	cfg.WidthCells, cfg.HeightCells = 1, 1

	g := NewOrigin()
	if err := g.Reset(cfg); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	err := g.Start()
	if !errors.Is(err, ErrGridExhausted) {
		t.Fatalf("Start() error = %v, expected ErrGridExhausted", err)
	}
	snap := g.Snapshot()
	if !snap.GameOver || snap.Reason != core.ReasonGridExhausted {
		t.Errorf("Snapshot = %+v, expected grid exhausted game over", snap)
	}
}

func TestGridExhaustedDuringRun(t *testing.T) {
	cfg := testConfig(9)
	cfg.WidthCells, cfg.HeightCells = 2, 2
	g := startedGame(t, NewOrigin(), cfg)

	g.snake = &Snake{
		body:     []core.Cell{{X: 20, Y: 20}, {X: 20, Y: 0}, {X: 0, Y: 0}},
		cellSize: 20,
		heading:  core.DirDown,
		pending:  core.DirDown,
	}
	g.food.set(core.Cell{X: 0, Y: 20})

	g.Turn(core.DirLeft)
	if res := g.Step(); res.State.GameOver {
		t.Fatalf("Unexpected game over: %+v", res.Snapshot)
	}

	// Eating now leaves no cell for new food once the head moves up
	g.Turn(core.DirUp)
	res := g.Step()

	if !res.State.GameOver || res.Snapshot.Reason != core.ReasonGridExhausted {
		t.Fatalf("GameOver = %v, reason = %q, expected grid exhausted", res.State.GameOver, res.Snapshot.Reason)
	}
	if res.State.Score != 1 || len(res.Snapshot.Body) != 4 {
		t.Errorf("Score = %d, length = %d, expected 1 and 4", res.State.Score, len(res.Snapshot.Body))
	}
	if res.Snapshot.HasFood {
		t.Error("No food should remain on a full board")
	}
	if !errors.Is(g.Err(), ErrGridExhausted) {
		t.Errorf("Err() = %v, expected ErrGridExhausted", g.Err())
	}
}

func TestLengthInvariantAndFoodPlacement(t *testing.T) {
	dirs := []core.Direction{core.DirLeft, core.DirRight, core.DirUp, core.DirDown}

	for seed := int64(0); seed < 25; seed++ {
		cfg := testConfig(seed)
		cfg.WidthCells, cfg.HeightCells = 8, 8
		g := startedGame(t, New(), cfg)
		input := rand.New(rand.NewSource(seed + 1000))

		for tick := 0; tick < 400; tick++ {
			if input.Intn(3) == 0 {
				g.Turn(dirs[input.Intn(len(dirs))])
			}

			before := g.Snapshot()
			ate := before.HasFood && before.Head() == before.Food
			res := g.Step()
			after := res.Snapshot

			if res.State.GameOver && after.Reason != core.ReasonGridExhausted {
				break
			}

			want := len(before.Body)
			if ate {
				want++
			}
			if len(after.Body) != want {
				t.Fatalf("seed %d tick %d: length %d, expected %d (ate=%v)", seed, tick, len(after.Body), want, ate)
			}
			if ate && after.Score != before.Score+1 {
				t.Fatalf("seed %d tick %d: score %d, expected %d", seed, tick, after.Score, before.Score+1)
			}
			// The head may stand on uneaten food; the rest of the body never does
			if after.HasFood {
				for _, c := range after.Body[1:] {
					if c == after.Food {
						t.Fatalf("seed %d tick %d: food %v inside body", seed, tick, after.Food)
					}
				}
			}
			if res.State.GameOver {
				break
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig(12345)

	g1 := startedGame(t, New(), cfg)
	g2 := startedGame(t, New(), cfg)

	for i := 0; i < 100; i++ {
		var d core.Direction
		switch i {
		case 0:
			d = core.DirDown
		case 5:
			d = core.DirRight
		case 9:
			d = core.DirUp
		}
		g1.Turn(d)
		g2.Turn(d)
		g1.Step()
		g2.Step()
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(1)
	cfg.CellSize = 0

	if err := New().Reset(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Reset() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestRandomStartInsideGrid(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := startedGame(t, New(), testConfig(seed))
		head := g.Snapshot().Head()
		if !g.bounds.Contains(head) {
			t.Fatalf("seed %d: start %v outside grid", seed, head)
		}
	}
}

func TestGameIDs(t *testing.T) {
	if New().ID() != "snake" || New().Title() != "Snake" {
		t.Errorf("Random variant = (%s, %s)", New().ID(), New().Title())
	}
	if NewOrigin().ID() != "snake_origin" {
		t.Errorf("Origin variant ID = %s", NewOrigin().ID())
	}
}

func TestRender(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(10))
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Snake") || !strings.Contains(content, "tester") {
		t.Error("HUD should contain title and player")
	}
	if !strings.ContainsRune(content, '█') {
		t.Error("Snake head should be drawn")
	}
	if !strings.ContainsRune(content, '●') {
		t.Error("Food should be drawn")
	}

	g.snake = NewSnake(core.Cell{X: 480, Y: 0}, 20)
	g.Turn(core.DirRight)
	g.Step()
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("Game over popup should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := startedGame(t, New(), testConfig(11))
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Error("Small screen should show a resize hint")
	}
}

func TestDebugState(t *testing.T) {
	g := startedGame(t, NewOrigin(), testConfig(5))
	g.food.set(core.Cell{X: 200, Y: 200})

	g.Turn(core.DirRight)
	g.Step()

	out := g.DebugState()
	for _, want := range []string{
		"Tick: 1, Score: 0, Phase: running",
		"Snake len: 1, Direction: right, Growing: false",
		"Head: (20, 0), Food: (200, 200) placed=true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Reason:") {
		t.Errorf("DebugState() reports a reason for a running game:\n%s", out)
	}

	for i := 0; i < 30 && !g.State().GameOver; i++ {
		g.Step()
	}
	if !strings.Contains(g.DebugState(), "Reason: wall") {
		t.Errorf("DebugState() after wall = %q", g.DebugState())
	}
}
