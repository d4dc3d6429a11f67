package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

// Canvas fill for rectangles.
const fillRune = '█'

// Options tune the terminal frontend.
type Options struct {
	Logger   *log.Logger
	Hold     time.Duration // How long a key stays held after its last press
	MaxFrame time.Duration // Longest elapsed time fed into one simulation step
}

// DefaultOptions returns options suitable for interactive play.
func DefaultOptions() Options {
	return Options{
		Logger:   log.New(os.Stderr),
		Hold:     500 * time.Millisecond,
		MaxFrame: 250 * time.Millisecond,
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	dl       *core.DrawList
	store    *storage.Store
	log      *log.Logger
	config   core.RuntimeConfig
	fixed    bool // Seed was chosen by the caller and is reused on restart
	keys     KeyMap
	held     *HeldKeys
	pending  core.InputFrame // One-shot actions for the next tick
	maxFrame time.Duration
	last     time.Time
	run      runStats
	state    core.GameState
	quitting bool
	saved    bool // Whether the run has been recorded for the current game over
	newBest  bool // The recorded run beat every earlier run
}

// runStats accumulates what is recorded when a run ends.
type runStats struct {
	hits   int
	frames int
	played time.Duration
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.MaxFrame <= 0 {
		opts.MaxFrame = DefaultOptions().MaxFrame
	}

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		dl:       core.NewDrawList(0, 0),
		store:    store,
		log:      opts.Logger,
		config:   cfg,
		fixed:    fixed,
		keys:     DefaultKeyMap(),
		held:     NewHeldKeys(opts.Hold),
		pending:  core.NewInputFrame(),
		maxFrame: opts.MaxFrame,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if err := registry.ConfigErr(m.game); err != nil {
		m.log.Error("cannot load config, keeping previous", "err", err)
	}
	m.log.Info("run started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records held gameplay keys and queues one-shot actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.log.Info("quit", "score", m.state.Score)
		if !m.saved {
			m.game.EndGame()
			m.state = m.game.State()
			m.saveRun()
		}
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	case isHeld(action):
		m.held.Press(action, time.Now())
	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes terminal resize events. The game draws in its own
// logical space, so only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// elapsed returns the time since the previous tick, capped at maxFrame.
// The first tick simulates nothing.
func (m *Model) elapsed(now time.Time) time.Duration {
	if m.last.IsZero() {
		m.last = now
		return 0
	}
	dt := now.Sub(m.last)
	m.last = now
	return min(max(dt, 0), m.maxFrame)
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.elapsed(now)
	defer m.pending.Clear()

	if m.pending.Has(core.ActionRestart) && m.state.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	if m.pending.Has(core.ActionEndRun) && m.game.EndGame() {
		m.log.Info("run ended", "score", m.game.State().Score)
	}

	frame := core.NewInputFrame()
	m.held.Fill(&frame, now)
	if m.pending.Has(core.ActionPause) {
		frame.Set(core.ActionPause)
	}

	result := m.game.Step(frame, dt)
	if !result.State.GameOver && !result.State.Paused {
		m.run.hits += result.Hits
		m.run.frames++
		m.run.played += dt
	}
	m.state = result.State

	if m.state.GameOver && !m.saved {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run after game over.
func (m *Model) restart() {
	if !m.fixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	if err := registry.ConfigErr(m.game); err != nil {
		m.log.Error("cannot reload config, keeping previous", "err", err)
	}
	m.state = m.game.State()
	m.run = runStats{}
	m.saved = false
	m.newBest = false
	m.held.Release()
	m.log.Info("run restarted", "seed", m.config.Seed)
}

// saveRun records the finished run once. Empty runs are not recorded.
func (m *Model) saveRun() {
	m.saved = true
	if m.store == nil || m.state.Score <= 0 {
		return
	}

	best, bestErr := m.store.HighScore(m.game.ID())
	if bestErr != nil {
		m.log.Warn("cannot read high score", "err", bestErr)
	}

	_, err := m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Score:    m.state.Score,
		Hits:     m.run.hits,
		Frames:   m.run.frames,
		Duration: m.run.played,
		Seed:     m.config.Seed,
		Frontend: "terminal",
	})
	if err != nil {
		m.log.Error("cannot save run", "err", err)
		return
	}
	m.log.Info("run saved", "score", m.state.Score, "hits", m.run.hits)

	if bestErr == nil && m.state.Score > best {
		m.newBest = true
		m.log.Info("new high score", "score", m.state.Score, "previous", best)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// render paints the game's current frame onto the cell grid.
func (m *Model) render() {
	m.dl.Reset()
	m.game.Draw(m.dl)
	if m.state.GameOver && m.newBest {
		m.dl.Text(core.V(10, 50), "NEW HIGH SCORE", 30, core.ColorYellow)
	}
	m.screen.Clear()
	m.screen.Paint(m.dl, fillRune)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
