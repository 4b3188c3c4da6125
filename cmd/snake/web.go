package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/web"
)

var (
	flagWebAddr    string
	flagWebPath    string
	flagWebVariant string
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the snake WebSocket server",
	Long: `Start an HTTP server with a WebSocket endpoint for browser clients.

Every connection plays its own run. Messages are JSON with a one-letter
type field:
  client: {"t":"j","n":"name"} join, {"t":"i","d":"ArrowLeft"} turn, {"t":"r"} restart
  server: "w" welcome, "s" state, "o" game over, "e" error

Examples:
  snake web
  snake web --addr :9000 --path /play
  snake web --variant snake_origin --seed 42`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (default from config)")
	webCmd.Flags().StringVar(&flagWebPath, "path", "", "WebSocket endpoint path (default from config)")
	webCmd.Flags().StringVar(&flagWebVariant, "variant", "", "Variant to serve (default from config)")
}

func runWeb(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagWebAddr != "" {
		cfg.Web.Address = flagWebAddr
	}
	if flagWebPath != "" {
		cfg.Web.Path = flagWebPath
	}
	if flagWebVariant != "" {
		cfg.Game.Variant = flagWebVariant
	}

	logger := newLogger(cfg, "snake-web")
	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	webCfg := web.Config{
		Address: cfg.Web.Address,
		Path:    cfg.Web.Path,
		Variant: cfg.Game.Variant,
		Game:    cfg.Runtime(flagSeed),
	}

	server, err := web.NewServer(webCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake web server on %s%s\n", server.Addr(), webCfg.Path)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
