package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// ReplayModel plays a journaled run back at its recorded interval.
type ReplayModel struct {
	run        storage.RunRecord
	replayer   *registry.Replayer
	screen     *core.Screen
	gen        uint64
	quitting   bool
	back       bool
	standalone bool // Back quits instead of returning to the run browser
}

// NewReplayModel loads the full turn log and prepares the replay.
func NewReplayModel(store *storage.Store, runID string, width, height int) (ReplayModel, error) {
	if store == nil {
		return ReplayModel{}, fmt.Errorf("replay: no run journal open")
	}
	rec, err := store.RunByID(runID)
	if err != nil {
		return ReplayModel{}, err
	}
	if rec == nil {
		return ReplayModel{}, fmt.Errorf("replay: run %q not found", runID)
	}

	r, err := registry.NewReplayer(rec.Variant, rec.Config(), rec.Turns, rec.Ticks)
	if err != nil {
		return ReplayModel{}, err
	}
	return ReplayModel{
		run:      *rec,
		replayer: r,
		screen:   core.NewScreen(width, max(height-footerHeight, 1)),
		gen:      nextGen(),
	}, nil
}

// Init starts playback.
func (m ReplayModel) Init() tea.Cmd {
	return tickCmd(m.run.TickInterval, m.gen)
}

// Update handles messages.
func (m ReplayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			m.back = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen || m.replayer.Done() {
			return m, nil
		}
		m.replayer.Step()
		if m.replayer.Done() {
			return m, nil
		}
		return m, tickCmd(m.run.TickInterval, m.gen)
	}
	return m, nil
}

// View renders the replayed board.
func (m ReplayModel) View() string {
	if m.quitting {
		return ""
	}
	m.replayer.Game().Render(m.screen)

	status := fmt.Sprintf("replay %s  tick %d/%d  esc: back  q: quit",
		ShortID(m.run.ID), m.replayer.Game().Snapshot().Tick, m.run.Ticks)
	if m.replayer.Done() {
		status = fmt.Sprintf("replay %s finished  esc: back  q: quit", ShortID(m.run.ID))
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(status)
}

// IsGoingBack returns true if user wants to leave the replay.
func (m ReplayModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplayModel) IsQuitting() bool {
	return m.quitting
}

// Replayer returns the underlying replayer.
func (m ReplayModel) Replayer() *registry.Replayer {
	return m.replayer
}

// RunReplay starts a Bubble Tea program replaying one run.
func RunReplay(store *storage.Store, runID string, width, height int) error {
	model, err := NewReplayModel(store, runID, width, height)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
