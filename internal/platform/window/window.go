// Package window runs a game in a desktop window using Ebitengine.
// Keys are polled every tick, so held keys are reported exactly, and the
// game's draw list is drawn at its logical resolution.
package window

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

// Options tune the window frontend.
type Options struct {
	Logger *log.Logger
	Width  int // Logical canvas width; the window opens at this size
	Height int
}

// binding maps a physical key to an action.
type binding struct {
	key    ebiten.Key
	action core.Action
}

// Held keys are polled every tick; the others act on the press only.
var (
	heldKeys = []binding{
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeySpace, core.ActionFire},
	}
	pressKeys = []binding{
		{ebiten.KeyP, core.ActionPause},
		{ebiten.KeyX, core.ActionEndRun},
		{ebiten.KeyR, core.ActionRestart},
	}
)

// Game adapts a registry.Game to ebiten.Game.
type Game struct {
	game    registry.Game
	store   *storage.Store
	log     *log.Logger
	config  core.RuntimeConfig
	fixed   bool // Seed was chosen by the caller and is reused on restart
	dl      *core.DrawList
	font    *text.GoTextFaceSource
	width   int
	height  int
	run     runStats
	state   core.GameState
	saved   bool
	newBest bool
}

// runStats accumulates what is recorded when a run ends.
type runStats struct {
	hits   int
	frames int
	played time.Duration
}

// New prepares a window frontend and starts the first run.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (*Game, error) {
	font, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 800, 600
	}

	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}

	g := &Game{
		game:   game,
		store:  store,
		log:    opts.Logger,
		config: cfg,
		fixed:  fixed,
		dl:     core.NewDrawList(float64(opts.Width), float64(opts.Height)),
		font:   font,
		width:  opts.Width,
		height: opts.Height,
	}
	g.game.Reset(g.config)
	if err := registry.ConfigErr(game); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	g.state = g.game.State()
	g.log.Info("run started", "game", game.ID(), "seed", cfg.Seed, "frontend", "window")
	return g, nil
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.log.Info("quit", "score", g.state.Score)
		return ebiten.Termination
	}

	frame := core.NewInputFrame()
	for _, b := range heldKeys {
		if ebiten.IsKeyPressed(b.key) {
			frame.Set(b.action)
		}
	}
	for _, b := range pressKeys {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Set(b.action)
		}
	}

	if frame.Has(core.ActionRestart) && g.state.GameOver {
		g.restart()
		return nil
	}
	if frame.Has(core.ActionEndRun) && g.game.EndGame() {
		g.log.Info("run ended", "score", g.game.State().Score)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	result := g.game.Step(frame, dt)
	if !result.State.GameOver && !result.State.Paused {
		g.run.hits += result.Hits
		g.run.frames++
		g.run.played += dt
	}
	g.state = result.State

	if g.state.GameOver && !g.saved {
		g.saveRun()
	}
	return nil
}

func (g *Game) restart() {
	if !g.fixed {
		g.config.Seed = time.Now().UnixNano()
	}
	g.game.Reset(g.config)
	if err := registry.ConfigErr(g.game); err != nil {
		g.log.Error("cannot reload config, keeping previous", "err", err)
	}
	g.state = g.game.State()
	g.run = runStats{}
	g.saved = false
	g.newBest = false
	g.log.Info("run restarted", "seed", g.config.Seed)
}

// saveRun records the finished run once. Empty runs are not recorded.
func (g *Game) saveRun() {
	g.saved = true
	if g.store == nil || g.state.Score <= 0 {
		return
	}

	best, bestErr := g.store.HighScore(g.game.ID())
	if bestErr != nil {
		g.log.Warn("cannot read high score", "err", bestErr)
	}

	_, err := g.store.SaveRun(storage.Run{
		GameID:   g.game.ID(),
		Score:    g.state.Score,
		Hits:     g.run.hits,
		Frames:   g.run.frames,
		Duration: g.run.played,
		Seed:     g.config.Seed,
		Frontend: "window",
	})
	if err != nil {
		g.log.Error("cannot save run", "err", err)
		return
	}
	g.log.Info("run saved", "score", g.state.Score, "hits", g.run.hits)

	if bestErr == nil && g.state.Score > best {
		g.newBest = true
		g.log.Info("new high score", "score", g.state.Score, "previous", best)
	}
}

// Draw renders the game's draw list.
func (g *Game) Draw(screen *ebiten.Image) {
	g.dl.Reset()
	g.game.Draw(g.dl)
	if g.state.GameOver && g.newBest {
		g.dl.Text(core.V(10, 50), "NEW HIGH SCORE", 30, core.ColorYellow)
	}

	for _, cmd := range g.dl.Cmds() {
		switch cmd.Kind {
		case core.DrawRect:
			vector.DrawFilledRect(screen,
				float32(cmd.Pos.X), float32(cmd.Pos.Y),
				float32(cmd.Size.X), float32(cmd.Size.Y),
				cmd.Color.RGBA(), false)
		case core.DrawText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(cmd.Pos.X, cmd.Pos.Y)
			op.ColorScale.ScaleWithColor(cmd.Color.RGBA())
			text.Draw(screen, cmd.Text, &text.GoTextFace{Source: g.font, Size: cmd.FontSize}, op)
		}
	}
}

// Layout fixes the logical screen to the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	g, err := New(game, store, cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	if !g.saved && g.state.Score > 0 {
		g.game.EndGame()
		g.state = g.game.State()
		g.saveRun()
	}
	return nil
}
