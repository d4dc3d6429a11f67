package shooter

import (
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// movePlayer applies the held direction to the player and clamps it to the
// playfield. Does nothing when there is no player.
func movePlayer(s *Session, in core.InputFrame, dt time.Duration) {
	p, ok := s.store.Player()
	if !ok {
		return
	}

	var dir core.Vec2
	if in.Has(core.ActionLeft) {
		dir.X--
	}
	if in.Has(core.ActionRight) {
		dir.X++
	}

	if !dir.IsZero() {
		p.Pos = p.Pos.Add(dir.Normalize().Scale(p.Speed * dt.Seconds()))
	}

	hw := s.cfg.Playfield.HalfWidth
	p.Pos.X = core.ClampF(p.Pos.X, -hw, hw)
}

// moveBullets advances every bullet upward.
func moveBullets(s *Session, dt time.Duration) {
	for b := range s.store.Bullets() {
		b.Pos.Y += b.Speed * dt.Seconds()
	}
}

// moveEnemies advances every enemy downward.
func moveEnemies(s *Session, dt time.Duration) {
	for e := range s.store.Enemies() {
		e.Pos.Y -= e.Speed * dt.Seconds()
	}
}
