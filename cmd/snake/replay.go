package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagReplayWatch bool
	flagReplayBoard bool
	flagReplayDebug bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a journaled run",
	Long: `Replay a run from its seed and recorded turns and print the outcome.
The run ID is shown by 'snake runs --plain'.

Examples:
  snake replay 1f0c2a7e-4b4d-4f57-9a53-0c1e2d3f4a5b
  snake replay 1f0c2a7e-4b4d-4f57-9a53-0c1e2d3f4a5b --board
  snake replay 1f0c2a7e-4b4d-4f57-9a53-0c1e2d3f4a5b --debug
  snake replay 1f0c2a7e-4b4d-4f57-9a53-0c1e2d3f4a5b --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayWatch, "watch", false, "Play the run back in the terminal")
	replayCmd.Flags().BoolVar(&flagReplayBoard, "board", false, "Print the final board")
	replayCmd.Flags().BoolVar(&flagReplayDebug, "debug", false, "Print the engine's internal state after the replay")
}

func runReplay(_ *cobra.Command, args []string) {
	runID := args[0]

	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if flagReplayWatch {
		width, height := terminalSize()
		if err := tui.RunReplay(store, runID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rec, err := store.RunByID(runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "Error: run %q not found\n", runID)
		fmt.Fprintln(os.Stderr, "Run 'snake runs --plain' to see journaled runs.")
		os.Exit(1)
	}

	replayer, err := registry.NewReplayer(rec.Variant, rec.Config(), rec.Turns, rec.Ticks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		os.Exit(1)
	}
	for !replayer.Done() {
		replayer.Step()
	}
	snap := replayer.Game().Snapshot()

	fmt.Printf("Run %s (%s)\n", rec.ID, rec.Variant)
	fmt.Println()
	fmt.Printf("  Player:  %s\n", rec.Player)
	fmt.Printf("  Seed:    %d\n", rec.Seed)
	fmt.Printf("  Grid:    %dx%d\n", rec.Width, rec.Height)
	fmt.Printf("  Turns:   %d\n", len(rec.Turns))
	fmt.Printf("  Ticks:   %d\n", snap.Tick)
	fmt.Printf("  Score:   %d\n", snap.Score)
	fmt.Printf("  Length:  %d\n", len(snap.Body))
	fmt.Printf("  End:     %s\n", tui.EndReasonText(snap.Reason))
	if snap.Reason != rec.EndReason {
		fmt.Printf("  Warning: journal recorded %q, replay ended with %q\n",
			tui.EndReasonText(rec.EndReason), tui.EndReasonText(snap.Reason))
	}

	if flagReplayBoard {
		b := snap.Bounds
		screen := core.NewScreen(max(b.WidthCells*2+2, 40), b.HeightCells+4)
		snap.GameOver = false // Board only, no popup
		snake.RenderSnapshot(screen, rec.Variant, snap)
		fmt.Println()
		fmt.Println(screen.String())
	}

	if flagReplayDebug {
		if d, ok := replayer.Game().(interface{ DebugState() string }); ok {
			fmt.Println()
			fmt.Print(d.DebugState())
		}
	}
}
