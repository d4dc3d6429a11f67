package shooter

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/config"
	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhasePlaying  Phase = iota // Gameplay systems run every frame
	PhaseGameOver              // Terminal; nothing is simulated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Caption is a text overlay that stays on screen once shown.
type Caption struct {
	Text     string
	Pos      core.Vec2 // Screen position of the first glyph
	FontSize float64
	Color    core.Color
}

// GameOverCaption is shown once when the session ends.
var GameOverCaption = Caption{
	Text:     "Game Over!",
	Pos:      core.V(300, 250),
	FontSize: 50,
	Color:    core.ColorRed,
}

// Session holds all state of one run: the entity store, score, spawn timer
// and lifecycle phase. It is owned by the frame driver and handed to every
// system, so nothing lives in package-level state.
type Session struct {
	cfg      config.ShooterConfig
	store    *Store
	spawn    *Timer
	rng      *rand.Rand
	score    int
	label    string // Score readout, refreshed while playing
	phase    Phase
	frames   int
	captions []Caption
	hits     []Hit
}

// NewSession starts a run in the Playing phase with the player at its start
// position. The seed makes enemy placement reproducible.
func NewSession(cfg config.ShooterConfig, seed int64) *Session {
	s := &Session{
		cfg:   cfg,
		store: NewStore(),
		spawn: NewTimer(cfg.Enemy.SpawnInterval, TimerRepeating),
		rng:   rand.New(rand.NewSource(seed)),
		phase: PhasePlaying,
	}

	cooldown := NewTimer(cfg.Player.FireCooldown, TimerRepeating)
	cooldown.Prime() // first shot is available immediately
	s.store.SpawnPlayer(core.V(0, cfg.Playfield.PlayerY), cfg.Player.Speed, cooldown)

	s.syncScore()
	return s
}

// Update runs one frame. While playing, systems run in a fixed order:
// movement, culling, spawning, collision, score readout. In game over
// nothing runs. Returns the collisions resolved this frame; the slice is
// reused by the next Update.
func (s *Session) Update(in core.InputFrame, dt time.Duration) []Hit {
	if dt < 0 {
		dt = 0
	}

	switch s.phase {
	case PhasePlaying:
		return s.play(in, dt)
	default:
		return nil
	}
}

func (s *Session) play(in core.InputFrame, dt time.Duration) []Hit {
	s.frames++

	movePlayer(s, in, dt)
	moveBullets(s, dt)
	moveEnemies(s, dt)

	cullOffscreen(s)

	spawnEnemies(s, dt)
	fireBullets(s, in, dt)

	hits := resolveCollisions(s)
	s.syncScore()

	s.store.Sweep()
	return hits
}

func (s *Session) syncScore() {
	s.label = fmt.Sprintf("Score: %d", s.score)
}

// EndGame moves the session from Playing to GameOver and shows the game-over
// caption. Nothing in the simulation calls it; the hosting application
// decides when a run ends. Reports whether a transition happened.
func (s *Session) EndGame() bool {
	if s.phase != PhasePlaying {
		return false
	}
	s.phase = PhaseGameOver
	s.captions = append(s.captions, GameOverCaption)
	return true
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the points earned so far.
func (s *Session) Score() int {
	return s.score
}

// Frames returns how many frames were simulated while playing.
func (s *Session) Frames() int {
	return s.frames
}

// Store exposes the entity store.
func (s *Session) Store() *Store {
	return s.store
}

// Captions returns the overlays shown so far.
func (s *Session) Captions() []Caption {
	return s.captions
}
