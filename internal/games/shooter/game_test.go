package shooter_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/registry"
)

func newGame(t *testing.T) *shooter.Game {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.SpawnInterval = time.Hour
	g := shooter.NewWithConfig(cfg)
	g.Reset(core.DefaultConfig())
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(shooter.GameID) {
		t.Fatal("shooter should register itself")
	}
	g, err := registry.Create(shooter.GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "shooter" || g.Title() != "Shooter" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := shooter.New()
	res := g.Step(core.InputOf(core.ActionFire), time.Second)
	if res.State != (core.GameState{}) {
		t.Errorf("State = %+v, expected zero before Reset", res.State)
	}
	if g.EndGame() {
		t.Error("EndGame without a session should report false")
	}
}

func TestPauseToggle(t *testing.T) {
	g := newGame(t)
	right := core.InputOf(core.ActionRight)

	res := g.Step(core.InputOf(core.ActionPause), 125*time.Millisecond)
	if !res.State.Paused {
		t.Fatal("pause action should pause the game")
	}

	g.Step(right, time.Second)
	p, _ := g.Session().Store().Player()
	if p.Pos.X != 0 {
		t.Errorf("player moved to %f while paused", p.Pos.X)
	}

	g.Step(core.InputOf(core.ActionPause, core.ActionRight), 125*time.Millisecond)
	if g.State().Paused {
		t.Fatal("second pause action should resume")
	}
	if p.Pos.X != 37.5 {
		t.Errorf("player x = %f after resuming, expected 37.5", p.Pos.X)
	}
}

func TestStepReportsHits(t *testing.T) {
	g := newGame(t)
	store := g.Session().Store()
	store.CreateBullet(core.V(0, 100), 500)
	store.CreateEnemy(core.V(0, 105), 100)

	res := g.Step(core.NewInputFrame(), 0)

	if res.Hits != 1 || res.State.Score != 10 {
		t.Errorf("StepResult = %+v, expected one hit and 10 points", res)
	}
}

func TestEndGameState(t *testing.T) {
	g := newGame(t)
	g.Step(core.InputOf(core.ActionPause), 0)

	if !g.EndGame() {
		t.Fatal("EndGame should end a running game")
	}
	st := g.State()
	if !st.GameOver || st.Paused {
		t.Errorf("State = %+v, expected game over and not paused", st)
	}

	res := g.Step(core.InputOf(core.ActionPause), time.Second)
	if res.State.Paused {
		t.Error("pause has no effect after game over")
	}
}

func TestResetStartsFreshRun(t *testing.T) {
	g := newGame(t)
	g.Session().Store().CreateBullet(core.V(0, 100), 500)
	g.Session().Store().CreateEnemy(core.V(0, 105), 100)
	g.Step(core.NewInputFrame(), 0)
	g.EndGame()

	g.Reset(core.DefaultConfig())

	if st := g.State(); st.Score != 0 || st.GameOver {
		t.Errorf("State after Reset = %+v", st)
	}
	if g.Config().Enemy.SpawnInterval != time.Hour {
		t.Error("Reset must keep a caller-supplied config")
	}
}

func TestDrawPaused(t *testing.T) {
	g := newGame(t)
	dl := core.NewDrawList(0, 0)

	g.Draw(dl)
	for _, c := range dl.Cmds() {
		if c.Text == "PAUSED" {
			t.Fatal("PAUSED shown while running")
		}
	}

	g.Step(core.InputOf(core.ActionPause), 0)
	dl.Reset()
	g.Draw(dl)

	last := dl.Cmds()[dl.Len()-1]
	if last.Kind != core.DrawText || last.Text != "PAUSED" {
		t.Errorf("last command = %+v, expected PAUSED overlay", last)
	}
}

func setConfigPath(t *testing.T, path string) {
	t.Helper()
	shooter.SetConfigPath(path)
	t.Cleanup(func() { shooter.SetConfigPath("") })
}

func TestRegistryGameLoadsConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, path)

	g, err := registry.Create(shooter.GameID)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	g.Reset(core.DefaultConfig())

	if err := registry.ConfigErr(g); err != nil {
		t.Fatalf("ConfigErr() = %v", err)
	}
	if speed := g.(*shooter.Game).Config().Player.Speed; speed != 600 {
		t.Errorf("player speed = %f, expected 600 from the config file", speed)
	}
}

func TestResetReportsConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, path)

	g := shooter.New()
	g.Reset(core.DefaultConfig())
	if g.ConfigErr() != nil {
		t.Fatalf("ConfigErr() = %v", g.ConfigErr())
	}

	if err := os.WriteFile(path, []byte("player:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	g.Reset(core.DefaultConfig())

	if !errors.Is(g.ConfigErr(), config.ErrInvalidConfig) {
		t.Errorf("ConfigErr() = %v, expected ErrInvalidConfig", g.ConfigErr())
	}
	if g.Config().Player.Speed != 600 {
		t.Errorf("player speed = %f, expected the previous config to be kept", g.Config().Player.Speed)
	}
	if g.Session() == nil || g.State().GameOver {
		t.Error("Reset should still start a run when the config cannot be reloaded")
	}

	missing := shooter.New()
	setConfigPath(t, filepath.Join(t.TempDir(), "missing.yaml"))
	missing.Reset(core.DefaultConfig())
	if missing.ConfigErr() == nil {
		t.Error("a missing config file should be reported")
	}
	if missing.Config() != config.DefaultShooterConfig() {
		t.Error("a game that never loaded a config should keep the defaults")
	}
}
