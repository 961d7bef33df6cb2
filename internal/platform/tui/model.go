package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a Model.
type Options struct {
	Store  *storage.Store // Leaderboard; nil disables score recording
	Logger *log.Logger    // Nil discards log output
	Player string         // Name recorded with finished runs
	Width  int            // Initial terminal width, 0 if unknown
	Height int            // Initial terminal height, 0 if unknown
}

// Model is the Bubble Tea model that presents one game session.
//
// The session is the only mutable game state. The board is painted from
// frame, which is refreshed only when a tick asks for a redraw (and on
// restart), so a tick that ends in a crash leaves the last good picture up.
type Model struct {
	session    *snake.Session
	store      *storage.Store
	logger     *log.Logger
	player     string
	keys       KeyMap
	help       help.Model
	energyBar  progress.Model
	board      *core.Screen
	scoreboard Scoreboard
	frame      snake.State
	best       int
	width      int
	height     int
	showScores bool
	recorded   bool // Whether the current run has been saved
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *snake.Session, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = "player"
	}

	w, h := BoardSize(session.Rules().GridSize)
	m := Model{
		session:    session,
		store:      opts.Store,
		logger:     logger,
		player:     player,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		energyBar:  newEnergyBar(),
		board:      core.NewScreen(w, h),
		scoreboard: NewScoreboard(opts.Store, opts.Height),
		frame:      session.State(),
		width:      opts.Width,
		height:     opts.Height,
	}
	m.best = m.loadBest()
	return m
}

// Init waits for the start command; the game begins stopped.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scoreboard = NewScoreboard(m.store, msg.Height)
		if m.showScores {
			m.scoreboard.Refresh()
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.session.Pause()
		return m, tea.Quit
	}

	if m.showScores {
		if key.Matches(msg, m.keys.Scores) || msg.String() == "esc" {
			m.showScores = false
			return m, nil
		}
		var cmd tea.Cmd
		m.scoreboard, cmd = m.scoreboard.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Start):
		return m.start()

	case key.Matches(msg, m.keys.Pause):
		if m.session.Pause() {
			m.logger.Debug("paused", m.session.Snapshot().LogValues()...)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Scores):
		m.session.Pause()
		m.showScores = true
		m.scoreboard.Refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if k, ok := m.keys.SteerKey(msg); ok {
		m.session.SetDirection(k)
	}
	return m, nil
}

// start begins or resumes ticking.
func (m Model) start() (tea.Model, tea.Cmd) {
	epoch, ok := m.session.Start()
	if !ok {
		return m, nil
	}
	m.logger.Debug("started", m.session.Snapshot().LogValues()...)
	return m, tickCmd(m.session.Interval(), epoch)
}

// restart throws the current game away and starts a new one.
func (m Model) restart() (tea.Model, tea.Cmd) {
	epoch := m.session.Restart()
	m.frame = m.session.State()
	m.recorded = false
	m.logger.Debug("restarted", m.session.Snapshot().LogValues()...)
	return m, tickCmd(m.session.Interval(), epoch)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	events, ok := m.session.Advance(msg.Epoch)
	if !ok {
		// Tick from a paused or replaced stream
		return m, nil
	}

	if events.Has(snake.EventRedraw) {
		m.frame = m.session.State()
	}

	if !m.session.Running() {
		m.finishRun()
		return m, nil
	}

	return m, tickCmd(m.session.Interval(), msg.Epoch)
}

// finishRun logs the end of a run and records it on the leaderboard once.
func (m *Model) finishRun() {
	st := m.session.State()
	if !st.Cause.GameOver() {
		return
	}
	m.logger.Info("game over", append([]any{"player", m.player}, st.Snapshot().LogValues()...)...)

	if m.recorded || st.Score == 0 || m.store == nil {
		return
	}
	m.recorded = true

	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Score:  st.Score,
		Ticks:  st.Ticks,
		Cause:  string(st.Cause),
	})
	if err != nil {
		m.logger.Warn("could not record run", "error", err)
		return
	}
	m.best = m.loadBest()
}

// loadBest reads the best score on the leaderboard.
func (m Model) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore()
	if err != nil {
		m.logger.Warn("could not read high score", "error", err)
		return 0
	}
	return best
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	if m.showScores {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.scoreboard.View(),
			helpStyle.Render("tab/esc back • ↑/↓ scroll • q quit"),
		)
	}

	grid := m.session.Rules().GridSize
	bw, bh := BoardSize(grid)
	if m.width > 0 && m.height > 0 && (m.width < max(bw, energyBarWidth+7) || m.height < bh+3) {
		return fmt.Sprintf("Window too small: need %dx%d, have %dx%d.\nResize to continue.",
			max(bw, energyBarWidth+7), bh+3, m.width, m.height)
	}

	DrawBoard(m.board, m.frame, grid)
	m.drawBanner()

	live := m.session.State()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderScore(live.Score, m.best, live.Ticks),
		renderEnergy(m.energyBar, m.frame.Energy),
		RenderScreen(m.board),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// drawBanner overlays the board with the stopped-state message, if any.
func (m Model) drawBanner() {
	st := m.session.State()
	if st.Running() {
		return
	}

	switch st.Cause {
	case snake.CausePaused:
		DrawBanner(m.board, "Paused", "space to resume", core.ColorYellow)
	case snake.CauseWall:
		DrawBanner(m.board, "Game Over", "Hit the wall · r to restart", core.ColorRed)
	case snake.CauseSelf:
		DrawBanner(m.board, "Game Over", "Bit yourself · r to restart", core.ColorRed)
	case snake.CauseExhausted:
		DrawBanner(m.board, "Game Over", "Out of energy · r to restart", core.ColorRed)
	default:
		DrawBanner(m.board, "SNAKE", "space to start", core.ColorBrightGreen)
	}
}

// NewGame creates a session for rules seeded from rt and the model that
// presents it at rt's screen size.
func NewGame(rules snake.Rules, rt core.RuntimeConfig, opts Options) Model {
	opts.Width = rt.ScreenW
	opts.Height = rt.ScreenH
	return NewModel(snake.NewSession(rules, rt.ResolveSeed()), opts)
}

// Run starts the Bubble Tea program for a local game.
func Run(rules snake.Rules, rt core.RuntimeConfig, opts Options) error {
	model := NewGame(rules, rt, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
