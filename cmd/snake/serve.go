package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the variant menu. The SSH
user name is shown as the player. Finished runs go to the server's journal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses ssh.host_key from the config file

Examples:
  snake serve                           # Listen on the configured address
  snake serve --ssh :2222               # Listen on port 2222
  snake serve --host-key ./my_host_key  # Use specific host key
  snake serve --db ./runs.db            # Use specific journal

Users can connect with:
  ssh localhost -p 2222`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger := newLogger(cfg, "snake-ssh")
	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = cfg.SSH.Address
	sshCfg.HostKeyPath = cfg.SSH.HostKey
	sshCfg.Game = cfg.Runtime(0)
	if cfg.SSH.IdleTimeout > 0 {
		sshCfg.IdleTimeout = cfg.SSH.IdleTimeout
	}

	server, err := tui.NewSSHServer(sshCfg, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
