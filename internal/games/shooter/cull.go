package shooter

// cullOffscreen destroys bullets above the ceiling and enemies below the floor.
// Returns how many entities were removed.
func cullOffscreen(s *Session) int {
	removed := 0
	for b := range s.store.Bullets() {
		if b.Pos.Y > s.cfg.Playfield.BulletCeiling && s.store.Destroy(b.ID) {
			removed++
		}
	}
	for e := range s.store.Enemies() {
		if e.Pos.Y < s.cfg.Playfield.EnemyFloor && s.store.Destroy(e.ID) {
			removed++
		}
	}
	return removed
}
