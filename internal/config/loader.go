package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const fileName = "snake.yaml"

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid")

// Load loads the snake configuration.
// Search order: customPath -> ~/.snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are decoded over Default(), so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.Validate()
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", fileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.Validate()
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate rejects settings no run can start with.
func (c Config) Validate() error {
	var problems []string

	if c.Grid.CellSize <= 0 {
		problems = append(problems, fmt.Sprintf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		problems = append(problems, fmt.Sprintf("grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Game.TickIntervalMS <= 0 {
		problems = append(problems, fmt.Sprintf("game.tick_interval_ms must be positive, got %d", c.Game.TickIntervalMS))
	}
	if c.Food.MaxAttempts < 0 {
		problems = append(problems, fmt.Sprintf("food.max_attempts must not be negative, got %d", c.Food.MaxAttempts))
	}
	if c.Game.Variant == "" {
		problems = append(problems, "game.variant must be set")
	}
	if c.Web.Path != "" && !strings.HasPrefix(c.Web.Path, "/") {
		problems = append(problems, fmt.Sprintf("web.path must start with /, got %q", c.Web.Path))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Runtime converts the file settings into the engine config for one run.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		CellSize:     c.Grid.CellSize,
		WidthCells:   c.Grid.Width,
		HeightCells:  c.Grid.Height,
		TickInterval: c.Game.TickInterval(),
		Player:       c.Game.Player,
		Seed:         seed,
		FoodAttempts: c.Food.MaxAttempts,
	}
}
