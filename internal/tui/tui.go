// Package tui provides the Bubble Tea window for the shell: a scrolling
// output log, the prompt and an input field.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/vshell/internal/session"
)

// ── Styles ────────────

var (
	// Title bar at the very top
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	outputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)

	replayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))
)

// ── Key bindings ─────────────────

var (
	quitKeys   = key.NewBinding(key.WithKeys("ctrl+c"))
	submitKey  = key.NewBinding(key.WithKeys("enter"))
	prevKey    = key.NewBinding(key.WithKeys("up"))
	nextKey    = key.NewBinding(key.WithKeys("down"))
	scrollKeys = key.NewBinding(key.WithKeys("pgup", "pgdown"))
)

// replayTickMsg fires when the pacing delay before a script command ends.
type replayTickMsg struct{}

// ── Model ────────────────────

// Model is the root Bubble Tea model for the shell window.
type Model struct {
	driver *session.Driver
	screen *session.Transcript
	replay *session.Replay
	delay  time.Duration
	title  string
	log    viewport.Model
	input  textinput.Model
	width  int
	height int
	ready  bool
}

// New creates the window model. screen must be the renderer the driver
// writes to. replay may be nil when no startup script runs.
func New(d *session.Driver, screen *session.Transcript, replay *session.Replay, delay time.Duration) Model {
	in := textinput.New()
	in.Prompt = d.Prompt()
	in.PromptStyle = promptStyle
	in.Placeholder = "ls, cd <dir>, exit"
	in.Focus()

	st := d.State()
	return Model{
		driver: d,
		screen: screen,
		replay: replay,
		delay:  delay,
		title:  "vshell - [" + st.Username + "@" + st.Hostname + "]",
		input:  in,
	}
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.title), m.stepReplay())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKeys):
			return m, tea.Quit

		case key.Matches(msg, submitKey):
			if m.replaying() {
				return m, nil
			}
			line := m.input.Value()
			m.input.Reset()
			reply := m.driver.Handle(session.LineSubmitted{Line: line})
			m.sync()
			if reply.Terminate {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, prevKey):
			m.applyReply(m.driver.Handle(session.RecallPrevious{}))
			return m, nil

		case key.Matches(msg, nextKey):
			m.applyReply(m.driver.Handle(session.RecallNext{}))
			return m, nil

		case key.Matches(msg, scrollKeys):
			var cmd tea.Cmd
			m.log, cmd = m.log.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case replayTickMsg:
		var cmd tea.Cmd
		if m.replay != nil && m.replay.Run() {
			cmd = m.stepReplay()
		}
		m.sync()
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initViewport()
		m.ready = true
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}

	title := titleStyle.Width(m.width).Render(m.title)

	hint := "  enter run  ↑/↓ history  pgup/pgdn scroll  ctrl+c quit"
	if m.replaying() {
		hint = replayStyle.Render("  replaying startup script…")
	}
	statusBar := statusBarStyle.Width(m.width).Render(hint)

	return lipgloss.JoinVertical(lipgloss.Left, title, m.log.View(), m.input.View(), statusBar)
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Lines returns everything rendered to the output log so far.
func (m Model) Lines() []string { return m.screen.Lines }

// Input returns the current input field contents.
func (m Model) Input() string { return m.input.Value() }

func (m *Model) initViewport() {
	// title(1) + input(1) + statusBar(1) = 3 fixed rows
	vpHeight := m.height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.log = viewport.New(m.width, vpHeight)
}

// sync copies the driver's output and prompt into the widgets and keeps
// the newest line in view.
func (m *Model) sync() {
	if m.screen.Prompt != "" {
		m.input.Prompt = m.screen.Prompt
	}
	if !m.ready {
		return
	}
	m.log.SetContent(outputStyle.Render(strings.Join(m.screen.Lines, "\n")))
	m.log.GotoBottom()
}

func (m *Model) applyReply(r session.Reply) {
	if !r.Replace {
		return
	}
	m.input.SetValue(r.Input)
	m.input.CursorEnd()
}

func (m Model) replaying() bool {
	return m.replay != nil && !m.replay.Done()
}

// stepReplay echoes the next script command and schedules its execution
// after the pacing delay. The update loop keeps running in between.
func (m Model) stepReplay() tea.Cmd {
	if m.replay == nil || !m.replay.Next() {
		return nil
	}
	return tea.Tick(m.delay, func(time.Time) tea.Msg { return replayTickMsg{} })
}

// Run starts the shell window and blocks until it closes.
func Run(d *session.Driver, screen *session.Transcript, replay *session.Replay, delay time.Duration) error {
	p := tea.NewProgram(New(d, screen, replay, delay), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
