package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// footerHeight is the number of terminal lines below the game screen.
const footerHeight = 1

// GameModel is the Bubble Tea model for playing one variant.
// Every restart builds a fresh engine and bumps gen, so ticks still in
// flight for the previous engine are dropped.
type GameModel struct {
	gameID string
	game   registry.Game
	runID  string
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model

	gen        uint64
	saved      bool // Journal written for the current run
	saveErr    error
	quitting   bool
	backToMenu bool
	standalone bool // Back quits instead of returning to a menu
}

// NewGameModel creates a model and starts the first run.
// store may be nil, in which case runs are not journaled.
func NewGameModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, width, height int) (GameModel, error) {
	m := GameModel{
		gameID: gameID,
		screen: core.NewScreen(width, max(height-footerHeight, 1)),
		store:  store,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
	if err := m.startRun(cfg.Seed); err != nil {
		return m, err
	}
	return m, nil
}

// startRun replaces the engine with a fresh one. A seed of 0 picks a
// time-based seed.
func (m *GameModel) startRun(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := m.config
	cfg.Seed = seed

	game, err := registry.NewRun(m.gameID, cfg)
	if game == nil {
		return err
	}
	// A board full at start is shown as game over, not treated as fatal.

	m.config = cfg
	m.game = game
	m.runID = uuid.New().String()
	m.gen = nextGen()
	m.saved = false
	m.saveErr = nil
	m.saveRun()
	return nil
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	if m.game.State().GameOver {
		return nil
	}
	return tickCmd(m.config.TickInterval, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The grid is fixed per run; only the screen follows the terminal.
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if err := m.startRun(0); err != nil {
			m.saveErr = err
			return m, nil
		}
		return m, m.Init()

	case key.Matches(msg, m.keys.Back):
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if d, ok := Intent(msg); ok {
		m.game.Turn(d)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	result := m.game.Step()
	if result.State.GameOver {
		// No further tick is scheduled for this run.
		m.saveRun()
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// saveRun journals the current run once it is over.
// Best-effort: a storage failure is shown but the game continues.
func (m *GameModel) saveRun() {
	if m.saved || !m.game.State().GameOver {
		return
	}
	m.saved = true
	if m.store == nil {
		return
	}
	rec := storage.NewRunRecord(m.runID, m.gameID, m.config, m.game.Snapshot(), m.game.Turns())
	m.saveErr = m.store.SaveRun(rec)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.gameID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)

	footer := m.help.View(m.keys)
	if m.saveErr != nil {
		footer = fmt.Sprintf("journal: %v", m.saveErr)
	}
	return out + "\n" + helpStyle.Render(footer)
}

// Game returns the current engine.
func (m GameModel) Game() registry.Game {
	return m.game
}

// RunID returns the identifier of the current run.
func (m GameModel) RunID() string {
	return m.runID
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing a single variant.
func Run(gameID string, store *storage.Store, cfg core.RuntimeConfig, width, height int) error {
	model, err := NewGameModel(gameID, store, cfg, width, height)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
