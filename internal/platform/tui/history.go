package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ledpong/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the totals sidebar
	sidebarWidth       = 24
)

// HistoryKeyMap defines the key bindings for the match history.
type HistoryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryData is everything the history screen shows.
type HistoryData struct {
	Matches []storage.MatchRecord
	Wins    [2]int
	Stats   storage.Stats
}

// LoadHistory reads the history screen data from the store.
func LoadHistory(ctx context.Context, store *storage.Store, limit int) (HistoryData, error) {
	var d HistoryData
	var err error
	if d.Matches, err = store.RecentMatches(ctx, limit); err != nil {
		return d, err
	}
	if d.Wins, err = store.WinCounts(ctx); err != nil {
		return d, err
	}
	stats, err := store.Stats(ctx)
	if err != nil {
		return d, err
	}
	d.Stats = *stats
	return d, nil
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	data        HistoryData
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel creates a new history model.
func NewHistoryModel(data HistoryData, width, height int) HistoryModel {
	m := HistoryModel{
		data:        data,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Match", Width: 10},
		{Title: "Winner", Width: 7},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Rallies", Width: 8},
		{Title: "Played", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
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

// Rows returns the table rows for the loaded matches.
func (m HistoryModel) Rows() []table.Row {
	rows := make([]table.Row, len(m.data.Matches))
	for i, r := range m.data.Matches {
		id := r.MatchID
		if len(id) > 8 {
			id = id[:8]
		}
		rows[i] = table.Row{
			id,
			r.Winner.String(),
			fmt.Sprintf("%d-%d", r.Score1, r.Score2),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Blocks),
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *HistoryModel) updateTableRows() {
	m.table.SetRows(m.Rows())
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("MATCH HISTORY"))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	content := boxStyle.Render(m.renderTableContent())
	if m.showSidebar {
		content = lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Width(sidebarWidth).Render(m.renderTotals()), "  ", content)
	} else {
		content = m.renderTotals() + "\n" + content
	}
	b.WriteString(content)

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m HistoryModel) renderTotals() string {
	s := m.data.Stats
	return fmt.Sprintf("Totals\nP1 wins  %d\nP2 wins  %d\nmatches  %d\ngoals    %d\nrallies  %d\nwall     %d\navg tick %.0f",
		m.data.Wins[0], m.data.Wins[1], s.Matches, s.Goals, s.Blocks, s.WallBounces, s.AvgTicks)
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.data.Matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No matches recorded yet.\nRun 'ledpong sim' or 'ledpong play' to record one.")
	}
	return m.table.View()
}

// RunHistory runs the match history screen.
func RunHistory(data HistoryData, width, height int) error {
	p := tea.NewProgram(NewHistoryModel(data, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
