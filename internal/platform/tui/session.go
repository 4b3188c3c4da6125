package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
	screenReplay
)

// SessionModel manages the full session flow: menu -> game -> menu, plus the
// run browser and replays. It is the top-level model for SSH sessions and
// for `snake play` without a variant.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	player   string
	width    int
	height   int
	screen   sessionScreen
	runsOnly bool // Started in the run browser; leaving it quits

	menu   MenuModel
	game   GameModel
	runs   RunsModel
	replay ReplayModel

	lastErr  error
	quitting bool
}

// NewSessionModel creates a session that opens on the variant menu.
// A non-zero cfg.Seed is used for the first run of every game started from
// the menu; restarts always pick a fresh seed.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, width, height int) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		player: cfg.Player,
		width:  width,
		height: height,
		screen: screenMenu,
		menu:   NewMenuModel(cfg.Player, width, height),
	}
}

// NewRunsSession creates a session that opens on the run browser.
func NewRunsSession(store *storage.Store, width, height int) SessionModel {
	return SessionModel{
		store:    store,
		width:    width,
		height:   height,
		screen:   screenRuns,
		runsOnly: true,
		runs:     NewRunsModel(store, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	case screenReplay:
		return m.updateReplay(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsRuns() {
		m.runs = NewRunsModel(m.store, m.width, m.height)
		m.screen = screenRuns
		m.menu = NewMenuModel(m.player, m.width, m.height)
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		m.menu = NewMenuModel(m.player, m.width, m.height)
		game, err := NewGameModel(selected.ID, m.store, m.config, m.width, m.height)
		if err != nil {
			// Shouldn't happen since the menu only shows registered variants
			m.lastErr = err
			return m, nil
		}
		m.game = game
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(GameModel); ok {
		m.game = game
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// Any tick still in flight carries the old generation and is dropped.
		m.screen = screenMenu
		return m, nil
	}

	return m, cmd
}

// updateRuns handles updates when in the run browser.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.runs.Update(msg)
	if runs, ok := next.(RunsModel); ok {
		m.runs = runs
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runs.IsGoingBack() {
		if m.runsOnly {
			m.quitting = true
			return m, tea.Quit
		}
		m.screen = screenMenu
		return m, nil
	}

	if run := m.runs.Watch(); run != nil {
		m.runs.watch = nil
		replay, err := NewReplayModel(m.store, run.ID, m.width, m.height)
		if err != nil {
			m.runs.loadErr = err
			return m, nil
		}
		m.replay = replay
		m.screen = screenReplay
		return m, m.replay.Init()
	}

	return m, cmd
}

// updateReplay handles updates while watching a replay.
func (m SessionModel) updateReplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.replay.Update(msg)
	if replay, ok := next.(ReplayModel); ok {
		m.replay = replay
	}

	if m.replay.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.replay.IsGoingBack() {
		m.screen = screenRuns
		return m, nil
	}

	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRuns:
		return m.runs.View()
	case screenReplay:
		return m.replay.View()
	}

	view := m.menu.View()
	if m.lastErr != nil {
		view += "\n" + helpStyle.Render(m.lastErr.Error())
	}
	return view
}

// Screen returns the active screen name, for tests and logging.
func (m SessionModel) Screen() string {
	switch m.screen {
	case screenGame:
		return "game"
	case screenRuns:
		return "runs"
	case screenReplay:
		return "replay"
	default:
		return "menu"
	}
}

// RunSession starts a Bubble Tea program on the variant menu.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, width, height int) error {
	p := tea.NewProgram(NewSessionModel(store, cfg, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunRunsBrowser starts a Bubble Tea program on the run browser.
func RunRunsBrowser(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewRunsSession(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
