// snake is a grid snake game for the terminal, SSH and the browser.
//
// Usage:
//
//	snake list               - List available variants
//	snake play [variant]     - Play in the terminal (menu if no variant)
//	snake serve              - Start SSH server for remote play
//	snake web                - Start WebSocket server for browsers
//	snake runs               - Browse journaled runs
//	snake replay <run-id>    - Re-simulate a journaled run
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.snake, ./configs, embedded)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set run journal path (default: ~/.snake/runs.db)
//	--player <name>     - Player name shown next to the score
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagPlayer   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake steers a growing snake around a fixed grid, eating food and
avoiding the walls and its own body.

Available commands:
  list     - Show all available variants
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  web      - Start WebSocket server for browser play
  runs     - Browse journaled runs
  replay   - Re-simulate a journaled run

Examples:
  snake list
  snake play
  snake play snake_origin --seed 42
  snake serve --ssh :2222
  snake web --addr :8080
  snake replay 1f0c2a7e-...`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig reads the config file and applies the global flag overrides.
// It exits on an invalid configuration.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagPlayer != "" {
		cfg.Game.Player = flagPlayer
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger creates the stderr logger used by the servers.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openStore opens the run journal. Games still work without one, so a
// failure is reported and nil is returned.
func openStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the run journal or exits.
func mustOpenStore(cfg config.Config) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	return store
}
