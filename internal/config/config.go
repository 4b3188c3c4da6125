// Package config provides YAML-based configuration loading for the snake
// engine and its front ends.
package config

import "time"

// Config contains every setting read from snake.yaml.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Grid    GridConfig    `yaml:"grid"`
	Food    FoodConfig    `yaml:"food"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Web     WebConfig     `yaml:"web"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig selects the variant and per-run parameters.
type GameConfig struct {
	Variant        string `yaml:"variant"`
	Player         string `yaml:"player"`
	TickIntervalMS int    `yaml:"tick_interval_ms"`
}

// TickInterval returns the tick interval as a duration.
func (g GameConfig) TickInterval() time.Duration {
	return time.Duration(g.TickIntervalMS) * time.Millisecond
}

// GridConfig defines the board geometry.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
	Width    int `yaml:"width"`  // In cells
	Height   int `yaml:"height"` // In cells
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// StorageConfig locates the run journal database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig configures `snake serve`.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures `snake web`.
type WebConfig struct {
	Address string `yaml:"address"`
	Path    string `yaml:"path"`
}

// LogConfig sets the logger level (debug, info, warn, error).
type LogConfig struct {
	Level string `yaml:"level"`
}
