package shooter

import (
	"time"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// spawnEnemies ticks the session spawn timer and creates one enemy at a
// random x on the spawn line whenever it finishes. The timer repeats on its own.
func spawnEnemies(s *Session, dt time.Duration) (EntityID, bool) {
	s.spawn.Tick(dt)
	if !s.spawn.Finished() {
		return 0, false
	}

	hw := s.cfg.Playfield.HalfWidth
	x := -hw + s.rng.Float64()*2*hw // [-hw, hw)
	return s.store.CreateEnemy(core.V(x, s.cfg.Playfield.SpawnLine), s.cfg.Enemy.Speed), true
}

// fireBullets ticks the player's cooldown and fires one bullet when Fire is
// held and the cooldown has finished. The cooldown is reset after each shot so
// a held key fires once per cooldown period. Does nothing without a player.
func fireBullets(s *Session, in core.InputFrame, dt time.Duration) (EntityID, bool) {
	p, ok := s.store.Player()
	if !ok {
		return 0, false
	}

	p.Cooldown.Tick(dt)
	if !in.Has(core.ActionFire) || !p.Cooldown.Finished() {
		return 0, false
	}

	muzzle := p.Pos.Add(core.V(0, s.cfg.Player.MuzzleOffset))
	id := s.store.CreateBullet(muzzle, s.cfg.Bullet.Speed)
	p.Cooldown.Reset()
	return id, true
}
