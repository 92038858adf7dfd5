package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ledpong/internal/bots"
	"github.com/vovakirdan/ledpong/internal/core"
	"github.com/vovakirdan/ledpong/internal/engine"
	"github.com/vovakirdan/ledpong/internal/registry"
	"github.com/vovakirdan/ledpong/internal/tilt"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	eventStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
)

// NewSessionFunc creates a fresh session, used on restart.
type NewSessionFunc func() (*engine.Session, error)

// Options configures a preview Model.
type Options struct {
	NewSession NewSessionFunc
	Bots       [2]registry.Bot // nil entries are driven from the keyboard
	Recorder   engine.MatchRecorder
	Logger     *log.Logger
	Title      string
}

// Model is the Bubble Tea model previewing the LED matrix.
type Model struct {
	opts    Options
	session *engine.Session
	source  *bots.Source
	keys    KeyMap
	help    help.Model

	// Keyboard commands queued for the next tick, one per player
	pending  [2]core.Command
	last     engine.Step
	event    string
	paused   bool
	quitting bool
	err      error
}

// NewModel creates a preview model. The first session is created
// immediately so configuration errors surface before the program starts.
func NewModel(opts Options) (Model, error) {
	m := Model{
		opts: opts,
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	if opts.Title == "" {
		m.opts.Title = "ledpong"
	}
	if err := m.reset(); err != nil {
		return m, err
	}
	return m, nil
}

// reset starts a new session.
func (m *Model) reset() error {
	s, err := m.opts.NewSession()
	if err != nil {
		return err
	}
	m.session = s
	m.source = bots.NewSource(s, m.opts.Bots, s.Inputs())
	m.pending = [2]core.Command{}
	m.last = engine.Step{Frame: s.Frame(), Snapshot: s.Snapshot(), Delay: s.Game().Delay()}
	m.event = ""
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.last.Delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		return m, nil
	case key.Matches(msg, m.keys.Restart):
		if err := m.reset(); err != nil {
			m.err = err
		}
		return m, nil
	case key.Matches(msg, m.keys.Snapshot):
		m.saveFrame()
		return m, nil
	}

	if p, cmd, ok := m.keys.PaddleKey(msg); ok && m.opts.Bots[p.Index()] == nil {
		m.pending[p.Index()] = cmd
	}
	return m, nil
}

// readings builds this tick's sensor readings: bots decide from the
// snapshot, humans replay the last key press.
func (m *Model) readings() tilt.Readings {
	snap := m.session.Snapshot()
	inputs := m.session.Inputs()
	var r tilt.Readings
	for _, p := range core.Players {
		i := p.Index()
		if m.opts.Bots[i] != nil {
			r[i] = m.source.ReadPlayer(p, snap)
		} else {
			r[i] = bots.Reading(m.pending[i], inputs[i].Thresholds, inputs[i].Mode)
		}
	}
	return r
}

// handleTick steps the session and schedules the next tick after the
// step's delay.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(100 * time.Millisecond)
	}

	r := m.readings()
	step := m.session.Step(r[0], r[1])
	m.pending = [2]core.Command{}
	m.last = step
	m.noteEvents(step)

	if step.Result != nil && m.opts.Recorder != nil {
		if err := m.opts.Recorder.SaveMatch(context.Background(), *step.Result); err != nil && m.opts.Logger != nil {
			m.opts.Logger.Warn("could not record match", "err", err)
		}
	}

	return m, tickCmd(step.Delay)
}

func (m *Model) noteEvents(step engine.Step) {
	ev := step.Events
	switch {
	case step.Celebrating:
		return
	case ev.Win:
		m.event = fmt.Sprintf("%s wins!", ev.Winner)
	case ev.MatchPoint:
		m.event = fmt.Sprintf("%s scores, match point", ev.Scorer)
	case ev.Goal:
		m.event = fmt.Sprintf("%s scores", ev.Scorer)
	case ev.ScoresReset:
		m.event = "new match"
	}
	if m.opts.Logger != nil && ev.Goal {
		m.opts.Logger.Debug("goal", "scorer", ev.Scorer, "score1", step.Snapshot.Score1, "score2", step.Snapshot.Score2)
	}
}

// saveFrame writes the current frame as text to ~/.ledpong/frames.
func (m *Model) saveFrame() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ledpong", "frames")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("frame_%s_%d.txt", timestamp, m.last.Snapshot.Tick))
	//nolint:errcheck // Best-effort save, the preview continues regardless
	os.WriteFile(path, []byte(m.session.Renderer().ASCII(m.last.Frame)), 0o600)
}

func (m Model) playerLabel(p core.Player) string {
	if b := m.opts.Bots[p.Index()]; b != nil {
		return fmt.Sprintf("%s (%s)", p, b.ID())
	}
	return fmt.Sprintf("%s (you)", p)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.opts.Title))
	sb.WriteString("\n\n")
	sb.WriteString(RenderFrame(m.last.Frame, m.session.Renderer().Mapper()))
	sb.WriteString("\n\n")

	snap := m.last.Snapshot
	status := fmt.Sprintf("%s %d : %d %s   first to %d   tick %d",
		m.playerLabel(core.Player1), snap.Score1, snap.Score2, m.playerLabel(core.Player2), snap.WinScore, snap.Tick)
	if m.paused {
		status += "   [paused]"
	}
	sb.WriteString(statusStyle.Render(status))
	sb.WriteByte('\n')
	if m.event != "" {
		sb.WriteString(eventStyle.Render(m.event))
	}
	if m.err != nil {
		sb.WriteString(eventStyle.Render(" error: " + m.err.Error()))
	}
	sb.WriteString("\n\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run starts the Bubble Tea program for a local preview.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
