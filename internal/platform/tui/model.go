package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/logging"
	"github.com/vovakirdan/tui-2048/internal/screens"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// Options configures the game model.
type Options struct {
	// Session must already be started.
	Session *session.Session
	// History feeds the scoreboard; nil disables it.
	History HistorySource
	Profile string

	Runtime    core.RuntimeConfig
	FadeFrames int

	// Renderer is the lipgloss renderer of the output terminal.
	// Nil uses the process default.
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
}

// Model is the Bubble Tea model running one 2048 session.
type Model struct {
	session  *session.Session
	director *screens.Director
	screen   *core.Screen
	painter  *Painter
	keys     *KeyMapper
	help     help.Model
	helpBar  lipgloss.Style
	history  HistorySource
	profile  string
	scores   *ScoreboardModel
	config   core.RuntimeConfig
	input    core.InputFrame
	logger   *log.Logger
	quitting bool
}

// NewModel creates the game model.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	painter := NewPainter(opts.Renderer)

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		session:  opts.Session,
		director: screens.ForSession(opts.Session, opts.FadeFrames, logger),
		painter:  painter,
		keys:     NewKeyMapper(),
		help:     h,
		helpBar:  painter.renderer.NewStyle().Foreground(lipgloss.Color("241")),
		history:  opts.History,
		profile:  opts.Profile,
		config:   cfg,
		input:    core.NewInputFrame(),
		logger:   logger,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())
	return m
}

// boardHeight is the screen height left after the help footer.
func (m Model) boardHeight() int {
	rows := 1
	if m.help.ShowAll {
		rows = fullHelpRows
	}
	return max(m.config.ScreenH-rows, 1)
}

// Current returns the screen being shown.
func (m Model) Current() screens.ID {
	return m.director.Current()
}

// ScoreboardOpen reports whether the scoreboard is shown.
func (m Model) ScoreboardOpen() bool {
	return m.scores != nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey records the action for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, m.boardHeight())
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		return m.quit()
	}
	return m, nil
}

// handleResize processes window resize events. The layout is recomputed
// every frame, so the round is not touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.boardHeight())

	if m.scores != nil {
		sb, _ := m.scores.Update(msg)
		m.setScores(sb)
	}
	return m, nil
}

// handleFrame runs one simulation frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.scores != nil {
		return m, frameCmd(m.config.TickRate)
	}

	req := m.director.Update(m.input)
	m.input.Clear()

	switch req {
	case screens.RequestQuit:
		return m.quit()
	case screens.RequestScoreboard:
		m.openScores()
	}
	return m, frameCmd(m.config.TickRate)
}

func (m *Model) openScores() {
	if m.history == nil {
		m.logger.Debug("scoreboard unavailable without storage")
		return
	}
	sb := NewScoreboardModel(m.history, m.profile, m.config.ScreenW, m.config.ScreenH)
	sb.embedded = true
	m.scores = &sb
}

func (m Model) updateScores(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.setScores(next)

	switch {
	case m.scores.IsQuitting():
		return m.quit()
	case m.scores.IsGoingBack():
		m.scores = nil
	}
	return m, cmd
}

func (m *Model) setScores(next tea.Model) {
	if sb, ok := next.(ScoreboardModel); ok {
		m.scores = &sb
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.session.Close()
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.director.Render(m.screen)
	return m.painter.Render(m.screen) + "\n" + m.helpBar.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
