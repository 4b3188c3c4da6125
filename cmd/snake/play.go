package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. Without a variant a menu lets you pick
one and browse past runs.

Controls:
  Arrows/hjkl/wasd - Turn
  R                - Restart with a fresh board
  Esc/B            - Back to menu
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play snake
  snake play snake_origin --seed 42
  snake play --player ann --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available variants.")
		os.Exit(1)
	}

	width, height := terminalSize()
	runtime := cfg.Runtime(flagSeed)

	store := openStore(cfg)

	var runErr error
	if len(args) == 1 {
		runErr = tui.Run(args[0], store, runtime, width, height)
	} else {
		runErr = tui.RunSession(store, runtime, width, height)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
