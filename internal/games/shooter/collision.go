package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// Hit records one resolved bullet/enemy collision.
type Hit struct {
	Bullet EntityID
	Enemy  EntityID
	At     core.Vec2 // Enemy position at impact
}

// resolveCollisions tests every live bullet against every live enemy.
// A pair closer than the hit radius destroys both and awards points. Each
// bullet scores at most once: it stops at its first hit, and enemies destroyed
// earlier in the pass are no longer visited.
func resolveCollisions(s *Session) []Hit {
	hits := s.hits[:0]
	radius := s.cfg.Scoring.HitRadius

	for b := range s.store.Bullets() {
		for e := range s.store.Enemies() {
			if b.Pos.Dist(e.Pos) >= radius {
				continue
			}
			s.store.Destroy(b.ID)
			s.store.Destroy(e.ID)
			s.score += s.cfg.Scoring.Points
			hits = append(hits, Hit{Bullet: b.ID, Enemy: e.ID, At: e.Pos})
			break
		}
	}

	s.hits = hits
	return hits
}
