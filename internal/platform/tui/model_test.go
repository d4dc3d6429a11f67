package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
	"github.com/vovakirdan/arcade-shooter/internal/games/shooter"
	"github.com/vovakirdan/arcade-shooter/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *shooter.Game) {
	t.Helper()
	cfg := config.DefaultShooterConfig()
	cfg.Enemy.SpawnInterval = time.Hour
	game := shooter.NewWithConfig(cfg)

	rc := core.DefaultConfig()
	rc.Seed = 1
	opts := DefaultOptions()
	opts.Logger = log.New(io.Discard)

	m := NewModel(game, store, rc, opts)
	m.Init()
	return m, game
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelHeldKeyMovesPlayer(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = step(t, m, TickMsg(now))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = step(t, m, TickMsg(now.Add(125*time.Millisecond)))

	p, _ := game.Session().Store().Player()
	if p.Pos.X != 37.5 {
		t.Errorf("player x = %f, expected 37.5 after 125ms held right", p.Pos.X)
	}
}

func TestModelHeldKeyBridgesRepeatDelay(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = step(t, m, TickMsg(now))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRight})

	// No auto-repeat arrives before the later ticks.
	m = step(t, m, TickMsg(now.Add(250*time.Millisecond)))
	p, _ := game.Session().Store().Player()
	if p.Pos.X != 75 {
		t.Fatalf("player x = %f, expected 75 after 250ms", p.Pos.X)
	}

	m = step(t, m, TickMsg(now.Add(400*time.Millisecond)))
	if p.Pos.X <= 75 {
		t.Errorf("player x = %f, expected the ship to keep moving 400ms after one press", p.Pos.X)
	}
}

func TestModelCapsFrameTime(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = step(t, m, TickMsg(now))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m.held.Press(core.ActionLeft, now.Add(10*time.Second))
	m = step(t, m, TickMsg(now.Add(10*time.Second)))

	p, _ := game.Session().Store().Player()
	if p.Pos.X != -75 {
		t.Errorf("player x = %f, expected one capped 250ms frame (-75)", p.Pos.X)
	}
}

func TestModelPauseIsOneShot(t *testing.T) {
	m, game := newTestModel(t, nil)
	now := time.Now()

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = step(t, m, TickMsg(now))
	m = step(t, m, TickMsg(now.Add(16*time.Millisecond)))

	if !game.State().Paused {
		t.Error("one press should pause exactly once")
	}
}

func TestModelEndRunSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	now := time.Now()
	game.Session().Store().CreateBullet(core.V(0, 100), 500)
	game.Session().Store().CreateEnemy(core.V(0, 105), 100)

	m = step(t, m, TickMsg(now))
	if game.State().Score != 10 {
		t.Fatalf("score = %d, expected 10", game.State().Score)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = step(t, m, TickMsg(now.Add(16*time.Millisecond)))
	m = step(t, m, TickMsg(now.Add(32*time.Millisecond)))

	if !game.State().GameOver {
		t.Fatal("x should end the run")
	}
	scores, err := store.TopScores(shooter.GameID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 10 || scores[0].Hits != 1 || scores[0].Frontend != "terminal" {
		t.Errorf("scores = %+v, expected one terminal run of 10", scores)
	}
	if !m.newBest {
		t.Error("first recorded run should be a new high score")
	}
	m.View()
	if !strings.Contains(m.screen.String(), "NEW HIGH SCORE") {
		t.Error("game over screen should announce the new high score")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = step(t, m, TickMsg(now.Add(48*time.Millisecond)))
	if game.State().GameOver || game.State().Score != 0 {
		t.Errorf("r should start a fresh run, state = %+v", game.State())
	}
	if m.newBest {
		t.Error("restart should clear the high score flag")
	}
}

func TestModelLowerScoreIsNotNewBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{GameID: shooter.GameID, Score: 50}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m, game := newTestModel(t, store)
	now := time.Now()
	game.Session().Store().CreateBullet(core.V(0, 100), 500)
	game.Session().Store().CreateEnemy(core.V(0, 105), 100)
	m = step(t, m, TickMsg(now))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = step(t, m, TickMsg(now.Add(16*time.Millisecond)))

	if !game.State().GameOver {
		t.Fatal("x should end the run")
	}
	if m.newBest {
		t.Error("a run of 10 should not beat the recorded 50")
	}
	if high, _ := store.HighScore(shooter.GameID); high != 50 {
		t.Errorf("HighScore() = %d, expected 50", high)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	if m.View() == "" {
		t.Error("View() should render the playfield")
	}
	if got := m.screen.Row(0); got[1:9] != "Score: 0" {
		t.Errorf("row 0 = %q, expected the score readout", got)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
