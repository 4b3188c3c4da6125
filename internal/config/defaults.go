package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded configuration, matching defaults/snake.yaml.
func Default() Config {
	return Config{
		Game: GameConfig{
			Variant:        "snake",
			Player:         "player",
			TickIntervalMS: 100,
		},
		Grid: GridConfig{
			CellSize: 20,
			Width:    25,
			Height:   25,
		},
		Storage: StorageConfig{
			DBPath: "~/.snake/runs.db",
		},
		SSH: SSHConfig{
			Address:     "0.0.0.0:2222",
			HostKey:     ".ssh/snake_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Web: WebConfig{
			Address: "0.0.0.0:8080",
			Path:    "/ws",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
