package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/term-snake/internal/config"
	"github.com/vovakirdan/term-snake/internal/core"
	"github.com/vovakirdan/term-snake/internal/games/snake"
	"github.com/vovakirdan/term-snake/internal/storage"
)

// ResultStore is the part of the history store the TUI needs.
type ResultStore interface {
	SaveResult(r storage.Result) (int64, error)
	RecentResults(limit int) ([]storage.Result, error)
	Record() (storage.Record, error)
}

// Options configures a game model.
type Options struct {
	Config   config.Config
	Store    ResultStore // may be nil
	Logger   *log.Logger // may be nil
	Seed     int64       // 0 = time-based
	Frontend string      // recorded with each result
	Width    int
	Height   int
}

// helpH is the number of lines kept under the screen for the help bar.
const helpH = 1

// Model is the Bubble Tea model for one player's snake session.
// Every key press that maps to a direction is exactly one turn.
type Model struct {
	opts        Options
	rng         *rand.Rand
	board       *snake.Board
	session     string
	screen      *core.Screen
	keys        KeyMap
	help        help.Model
	history     historyView
	showHistory bool
	saved       bool // result for the current session is stored
	quitting    bool
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Frontend == "" {
		opts.Frontend = "tui"
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := Model{
		opts:    opts,
		rng:     rng,
		screen:  core.NewScreen(opts.Width, max(0, opts.Height-helpH)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		history: newHistoryView(opts.Width, opts.Height),
	}
	m.help.Width = opts.Width
	m.newGame()
	return m
}

// newGame starts a new board under a new session ID.
func (m *Model) newGame() {
	m.board = snake.New(m.rng)
	m.session = uuid.NewString()
	m.saved = false
	m.opts.Logger.Info("game started", "session", m.session, "frontend", m.opts.Frontend)
}

// Init implements tea.Model. The game is turn-based, so there is no tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width = msg.Width
		m.opts.Height = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-helpH))
		m.help.Width = msg.Width
		m.history.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.History):
		m.toggleHistory()
		return m, nil
	}

	if m.showHistory {
		if key.Matches(msg, m.keys.Back) {
			m.showHistory = false
			return m, nil
		}
		var cmd tea.Cmd
		m.history, cmd = m.history.update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Restart) {
		if m.board.Status().Terminal() {
			m.newGame()
		}
		return m, nil
	}

	dir, ok := m.keys.Direction(msg)
	if !ok || m.board.Status().Terminal() {
		return m, nil
	}

	outcome := m.board.ApplyMove(dir)
	m.opts.Logger.Debug("turn",
		"session", m.session,
		"turn", m.board.Turn(),
		"dir", dir,
		"grew", outcome.Grew,
		"status", outcome.Status,
	)
	if outcome.Status.Terminal() {
		m.saveResult()
	}
	return m, nil
}

func (m *Model) toggleHistory() {
	m.showHistory = !m.showHistory
	if !m.showHistory {
		return
	}
	if err := m.history.load(m.opts.Store); err != nil {
		m.opts.Logger.Warn("could not load history", "error", err)
	}
}

// saveResult records the finished game once per session.
func (m *Model) saveResult() {
	if m.saved {
		return
	}
	m.saved = true

	m.opts.Logger.Info("game over",
		"session", m.session,
		"status", m.board.Status(),
		"cause", m.board.Cause(),
		"turns", m.board.Turn(),
	)
	if m.opts.Store == nil {
		return
	}

	_, err := m.opts.Store.SaveResult(storage.Result{
		SessionID: m.session,
		Frontend:  m.opts.Frontend,
		Outcome:   string(m.board.Status()),
		Cause:     string(m.board.Cause()),
		Turns:     m.board.Turn(),
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "session", m.session, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showHistory {
		return m.history.view() + helpStyle.Render(m.help.View(m.keys))
	}

	DrawGame(m.screen, m.board.Snapshot(), m.opts.Config)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Board returns the board being played.
func (m Model) Board() *snake.Board {
	return m.board
}

// SessionID returns the ID of the current game.
func (m Model) SessionID() string {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
