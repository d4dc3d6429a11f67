package shooter

import (
	"iter"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// EntityID identifies a live or destroyed entity. IDs are never reused
// within a Store; 0 is never issued.
type EntityID uint64

// Kind is the category an entity belongs to.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Player is the ship controlled by the user.
type Player struct {
	ID       EntityID
	Pos      core.Vec2
	Speed    float64
	Cooldown *Timer // Fire cooldown
}

// Bullet travels upward from the player.
type Bullet struct {
	ID    EntityID
	Pos   core.Vec2
	Speed float64
}

// Enemy descends from the spawn line.
type Enemy struct {
	ID    EntityID
	Pos   core.Vec2
	Speed float64
}

// Store owns every entity of a session in one typed collection per kind.
//
// Destroy takes effect immediately for lookups and traversals; the backing
// slices are compacted by Sweep at the end of the frame.
type Store struct {
	nextID  EntityID
	live    map[EntityID]Kind
	player  *Player
	bullets []*Bullet
	enemies []*Enemy
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		live:    make(map[EntityID]Kind),
		bullets: make([]*Bullet, 0, 32),
		enemies: make([]*Enemy, 0, 32),
	}
}

func (s *Store) issue(kind Kind) EntityID {
	s.nextID++
	s.live[s.nextID] = kind
	return s.nextID
}

// SpawnPlayer creates the player, replacing any existing one.
func (s *Store) SpawnPlayer(pos core.Vec2, speed float64, cooldown *Timer) EntityID {
	if s.player != nil {
		s.Destroy(s.player.ID)
	}
	id := s.issue(KindPlayer)
	s.player = &Player{ID: id, Pos: pos, Speed: speed, Cooldown: cooldown}
	return id
}

// CreateBullet adds a bullet and returns its ID.
func (s *Store) CreateBullet(pos core.Vec2, speed float64) EntityID {
	id := s.issue(KindBullet)
	s.bullets = append(s.bullets, &Bullet{ID: id, Pos: pos, Speed: speed})
	return id
}

// CreateEnemy adds an enemy and returns its ID.
func (s *Store) CreateEnemy(pos core.Vec2, speed float64) EntityID {
	id := s.issue(KindEnemy)
	s.enemies = append(s.enemies, &Enemy{ID: id, Pos: pos, Speed: speed})
	return id
}

// Destroy marks an entity as removed. Destroying an unknown or already
// destroyed ID is a no-op. Reports whether a live entity was removed.
func (s *Store) Destroy(id EntityID) bool {
	if _, ok := s.live[id]; !ok {
		return false
	}
	delete(s.live, id)
	return true
}

// Alive reports whether the entity exists and has not been destroyed.
func (s *Store) Alive(id EntityID) bool {
	_, ok := s.live[id]
	return ok
}

// KindOf returns the kind of a live entity.
func (s *Store) KindOf(id EntityID) (Kind, bool) {
	k, ok := s.live[id]
	return k, ok
}

// Player returns the live player, if any.
func (s *Store) Player() (*Player, bool) {
	if s.player == nil || !s.Alive(s.player.ID) {
		return nil, false
	}
	return s.player, true
}

// Bullets traverses the bullets that exist when iteration starts.
// Bullets created during the traversal are not visited; bullets destroyed
// before they are reached are skipped.
func (s *Store) Bullets() iter.Seq[*Bullet] {
	return each(s, s.bullets, func(b *Bullet) EntityID { return b.ID })
}

// Enemies traverses the enemies that exist when iteration starts, with the
// same rules as Bullets.
func (s *Store) Enemies() iter.Seq[*Enemy] {
	return each(s, s.enemies, func(e *Enemy) EntityID { return e.ID })
}

func each[T any](s *Store, items []*T, idOf func(*T) EntityID) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, it := range items {
			if !s.Alive(idOf(it)) {
				continue
			}
			if !yield(it) {
				return
			}
		}
	}
}

// Count returns the number of live entities of a kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, k := range s.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Sweep drops destroyed entities from the backing collections.
func (s *Store) Sweep() {
	s.bullets = compact(s, s.bullets, func(b *Bullet) EntityID { return b.ID })
	s.enemies = compact(s, s.enemies, func(e *Enemy) EntityID { return e.ID })
	if s.player != nil && !s.Alive(s.player.ID) {
		s.player = nil
	}
}

func compact[T any](s *Store, items []*T, idOf func(*T) EntityID) []*T {
	kept := items[:0]
	for _, it := range items {
		if s.Alive(idOf(it)) {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}
