// Package shooter implements a lateral arcade shooter.
// The player ship slides along the bottom of the playfield and fires upward
// at enemies that spawn on a timer and descend. Every hit scores points.
package shooter

import (
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "shooter"

// configPath is the config file games created through the registry load on
// Reset. Empty means the default search order.
var configPath string

// SetConfigPath sets the config file registry-created games load.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's registry.Game interface and adds
// pausing on top of it.
type Game struct {
	cfg     config.ShooterConfig
	fixed   bool  // cfg was supplied by the caller; Reset must not reload it
	loadErr error // Last config load failure
	session *Session
	paused  bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{cfg: config.DefaultShooterConfig()}
}

// NewWithConfig creates a game bound to the given configuration.
func NewWithConfig(cfg config.ShooterConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Shooter"
}

// Reset starts a new session. A game from New reloads its config first; if
// that fails the previous config is kept and ConfigErr reports the failure.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixed {
		cfg, err := config.LoadShooter(configPath)
		g.loadErr = err
		if err == nil {
			g.cfg = cfg
		}
	}

	g.session = NewSession(g.cfg, runtime.Seed)
	g.paused = false
}

// Step advances the session by one frame.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	if g.session == nil || g.session.Phase() == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	hits := g.session.Update(in, dt)
	return core.StepResult{State: g.State(), Hits: len(hits)}
}

// Draw appends the current frame to the draw list.
func (g *Game) Draw(dl *core.DrawList) {
	if g.session == nil {
		return
	}
	g.session.Draw(dl)

	if g.paused {
		dl.Text(core.V(g.cfg.Playfield.Width/2-30, g.cfg.Playfield.Height/2), "PAUSED", 30, core.ColorWhite)
	}
}

// EndGame ends the current run.
func (g *Game) EndGame() bool {
	if g.session == nil {
		return false
	}
	g.paused = false
	return g.session.EndGame()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Session returns the running session, or nil before the first Reset.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration of the running session.
func (g *Game) Config() config.ShooterConfig {
	return g.cfg
}

// ConfigErr returns why the last Reset could not load the config, or nil.
func (g *Game) ConfigErr() error {
	return g.loadErr
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
