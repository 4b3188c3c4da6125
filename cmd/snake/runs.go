package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagRunsPlain bool
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse journaled runs",
	Long: `Open the run browser. Scores are not stored; each run is replayed
from its seed and turns to recover them.

Select a run and press Enter to watch its replay.

Examples:
  snake runs
  snake runs --plain --limit 20
  snake runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagRunsPlain, "plain", false, "Print runs instead of opening the browser")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print with --plain")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every journaled run")
}

func runRuns(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	store := mustOpenStore(cfg)
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run journal cleared.")
		return
	}

	if !flagRunsPlain {
		width, height := terminalSize()
		if err := tui.RunRunsBrowser(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := tui.LoadRuns(store, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' and finish a game to record one.")
		return
	}

	fmt.Printf("  %-36s  %-14s  %-12s  %5s  %6s  %-10s  %s\n",
		"Run", "Variant", "Player", "Score", "Ticks", "End", "Date")
	fmt.Printf("  %-36s  %-14s  %-12s  %5s  %6s  %-10s  %s\n",
		"---", "-------", "------", "-----", "-----", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-36s  %-14s  %-12s  %5d  %6d  %-10s  %s\n",
			r.ID, r.Variant, r.Player, r.Score, r.Ticks,
			tui.EndReasonText(r.EndReason), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
