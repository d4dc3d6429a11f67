package shooter

import (
	"testing"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

func TestStoreIDsAreUnique(t *testing.T) {
	s := NewStore()
	seen := make(map[EntityID]bool)

	ids := []EntityID{
		s.SpawnPlayer(core.V(0, 0), 1, NewTimer(0, TimerRepeating)),
		s.CreateBullet(core.V(0, 0), 1),
		s.CreateEnemy(core.V(0, 0), 1),
		s.CreateBullet(core.V(0, 0), 1),
	}
	for _, id := range ids {
		if id == 0 {
			t.Error("ID 0 must never be issued")
		}
		if seen[id] {
			t.Errorf("ID %d issued twice", id)
		}
		seen[id] = true
	}

	if k, ok := s.KindOf(ids[2]); !ok || k != KindEnemy {
		t.Errorf("KindOf() = %v, %v, expected enemy", k, ok)
	}
	if s.Count(KindBullet) != 2 || s.Count(KindEnemy) != 1 || s.Count(KindPlayer) != 1 {
		t.Error("Count() does not match created entities")
	}
}

func TestStoreDestroyIsIdempotent(t *testing.T) {
	s := NewStore()
	id := s.CreateEnemy(core.V(0, 0), 1)

	if !s.Destroy(id) {
		t.Error("first Destroy should report removal")
	}
	if s.Destroy(id) {
		t.Error("second Destroy should be a no-op")
	}
	if s.Destroy(9999) {
		t.Error("destroying an unknown ID should be a no-op")
	}
	if s.Alive(id) {
		t.Error("destroyed entity should not be alive")
	}
	if _, ok := s.KindOf(id); ok {
		t.Error("destroyed entity should have no kind")
	}

	s.Sweep()
	if s.Destroy(id) {
		t.Error("Destroy after Sweep should still be a no-op")
	}
}

func TestStoreTraversalSkipsDestroyed(t *testing.T) {
	s := NewStore()
	a := s.CreateBullet(core.V(0, 1), 1)
	b := s.CreateBullet(core.V(0, 2), 1)
	c := s.CreateBullet(core.V(0, 3), 1)
	s.Destroy(b)

	var visited []EntityID
	for bullet := range s.Bullets() {
		visited = append(visited, bullet.ID)
		if bullet.ID == a {
			// Destroying an entity ahead of the cursor hides it from this pass.
			s.Destroy(c)
		}
	}

	if len(visited) != 1 || visited[0] != a {
		t.Errorf("visited %v, expected only %d", visited, a)
	}
}

func TestStoreTraversalIgnoresNewEntities(t *testing.T) {
	s := NewStore()
	s.CreateEnemy(core.V(0, 0), 1)

	visits := 0
	for range s.Enemies() {
		visits++
		s.CreateEnemy(core.V(1, 1), 1)
	}

	if visits != 1 {
		t.Errorf("visited %d enemies, expected 1", visits)
	}
	if s.Count(KindEnemy) != 2 {
		t.Errorf("Count() = %d, expected 2", s.Count(KindEnemy))
	}
}

func TestStoreTraversalStopsEarly(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.CreateBullet(core.V(0, float64(i)), 1)
	}

	visits := 0
	for range s.Bullets() {
		visits++
		if visits == 2 {
			break
		}
	}
	if visits != 2 {
		t.Errorf("visited %d bullets, expected break after 2", visits)
	}
}

func TestStoreSweep(t *testing.T) {
	s := NewStore()
	keep := s.CreateEnemy(core.V(0, 0), 1)
	drop := s.CreateEnemy(core.V(0, 0), 1)
	s.Destroy(drop)

	s.Sweep()

	if len(s.enemies) != 1 || s.enemies[0].ID != keep {
		t.Errorf("Sweep left %d enemies, expected only %d", len(s.enemies), keep)
	}
}

func TestStorePlayer(t *testing.T) {
	s := NewStore()
	if _, ok := s.Player(); ok {
		t.Error("empty store should have no player")
	}

	first := s.SpawnPlayer(core.V(0, -200), 300, NewTimer(0, TimerRepeating))
	second := s.SpawnPlayer(core.V(10, -200), 300, NewTimer(0, TimerRepeating))

	if s.Alive(first) {
		t.Error("spawning a new player should retire the old one")
	}
	p, ok := s.Player()
	if !ok || p.ID != second {
		t.Fatalf("Player() = %v, %v, expected %d", p, ok, second)
	}
	if s.Count(KindPlayer) != 1 {
		t.Errorf("Count(player) = %d, expected 1", s.Count(KindPlayer))
	}

	s.Destroy(second)
	if _, ok := s.Player(); ok {
		t.Error("destroyed player should not be returned")
	}
	s.Sweep()
	if s.player != nil {
		t.Error("Sweep should drop the destroyed player")
	}
}

func TestKindString(t *testing.T) {
	if KindBullet.String() != "bullet" || Kind(42).String() != "unknown" {
		t.Error("unexpected Kind names")
	}
}
