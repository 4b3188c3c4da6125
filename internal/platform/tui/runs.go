package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// maxRuns is the number of journal entries the browser loads.
const maxRuns = 100

// RunSummary is a journal entry with its replayed outcome.
type RunSummary struct {
	storage.RunRecord
	Score  int
	Length int
}

// LoadRuns reads recent runs and replays each one to recover its score.
// Runs whose variant is no longer registered are listed with a zero score.
func LoadRuns(store *storage.Store, limit int) ([]RunSummary, error) {
	if store == nil {
		return nil, nil
	}
	recs, err := store.RecentRuns(limit)
	if err != nil {
		return nil, err
	}

	out := make([]RunSummary, 0, len(recs))
	for _, rec := range recs {
		summary := RunSummary{RunRecord: rec}
		full, err := store.RunByID(rec.ID)
		if err == nil && full != nil {
			if snap, err := registry.Replay(full.Variant, full.Config(), full.Turns, full.Ticks); err == nil {
				summary.Score = snap.Score
				summary.Length = len(snap.Body)
			}
		}
		out = append(out, summary)
	}
	return out, nil
}

// ShortID returns the first block of a run ID for display.
func ShortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// EndReasonText returns a display label for an end reason.
func EndReasonText(r core.EndReason) string {
	switch r {
	case core.ReasonWall:
		return "wall"
	case core.ReasonSelf:
		return "self"
	case core.ReasonGridExhausted:
		return "board full"
	default:
		return "-"
	}
}

// RunsKeyMap defines the key bindings for the run browser.
type RunsKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Watch key.Binding
	Back  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch replay"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run browser.
type RunsModel struct {
	store     *storage.Store
	runs      []RunSummary
	loadErr   error
	table     table.Model
	help      help.Model
	keys      RunsKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	watch     *RunSummary // Set when the user picks a run to replay
}

// NewRunsModel creates a run browser and loads the journal.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		store:  store,
		keys:   DefaultRunsKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.runs, m.loadErr = LoadRuns(store, maxRuns)
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 10},
		{Title: "Variant", Width: 14},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "End", Width: 11},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help and borders
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			ShortID(r.ID),
			r.Variant,
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			EndReasonText(r.EndReason),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the run browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Watch):
			if i := m.table.Cursor(); i >= 0 && i < len(m.runs) {
				run := m.runs[i]
				m.watch = &run
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(titleStyle.Render("RECENT RUNS"), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render(fmt.Sprintf("Cannot read the run journal:\n%v", m.loadErr))
	case m.store == nil:
		return emptyStyle.Render("No run journal open.")
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nFinish a game to see it here!")
	}
	return m.table.View()
}

// Watch returns the run picked for replay, or nil.
func (m RunsModel) Watch() *RunSummary {
	return m.watch
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RunsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunsModel) IsQuitting() bool {
	return m.quitting
}
