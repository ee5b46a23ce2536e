package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mapgen/internal/storage"
)

// MaxHistoryRows is the number of recent runs loaded into the history table.
const MaxHistoryRows = 100

// HistoryKeyMap defines the key bindings for the history browser.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists recorded runs and lets the user pick one to replay.
type HistoryModel struct {
	runs     []storage.RunRecord
	table    table.Model
	help     help.Model
	keys     HistoryKeyMap
	width    int
	height   int
	selected *storage.RunRecord
	quitting bool
}

// NewHistoryModel creates a history browser over runs (most recent first).
func NewHistoryModel(runs []storage.RunRecord, width, height int) HistoryModel {
	m := HistoryModel{
		runs:   runs,
		help:   help.New(),
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Archetype", Width: 9},
		{Title: "Strategy", Width: 11},
		{Title: "Size", Width: 7},
		{Title: "Seed", Width: 20},
		{Title: "Carved", Width: 6},
		{Title: "Date", Width: 12},
	}

	height := m.height - 6
	if height < 3 {
		height = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// HistoryRow formats one run as table cells.
func HistoryRow(r storage.RunRecord) table.Row {
	id := r.ID
	if len(id) > 8 {
		id = id[:8]
	}
	archetype := r.Archetype
	if archetype == "" {
		archetype = "-"
	}
	return table.Row{
		id,
		archetype,
		r.Strategy,
		fmt.Sprintf("%dx%d", r.Width, r.Height),
		fmt.Sprintf("%d", r.Seed),
		fmt.Sprintf("%d", r.Hallways+r.Intersections),
		r.CreatedAt.Format("Jan 02 15:04"),
	}
}

func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = HistoryRow(r)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history browser.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if len(m.runs) > 0 {
				run := m.runs[m.table.Cursor()]
				m.selected = &run
			}
			return m, tea.Quit
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

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("RUN HISTORY (%d)", len(m.runs))))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		b.WriteString("No runs recorded yet.\n")
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(m.table.View()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Selected returns the run chosen with enter, or nil.
func (m HistoryModel) Selected() *storage.RunRecord {
	return m.selected
}

// RunHistory shows the history browser and returns the selected run, if any.
func RunHistory(store *storage.Store) (*storage.RunRecord, error) {
	runs, err := store.RecentRuns(MaxHistoryRows)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(NewHistoryModel(runs, 0, 0), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if hm, ok := final.(HistoryModel); ok {
		return hm.Selected(), nil
	}
	return nil, nil
}
