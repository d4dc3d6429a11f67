package shooter

import "github.com/vovakirdan/arcade-shooter/internal/core"

// Score readout placement, in screen units.
var (
	scorePos      = core.V(10, 10)
	scoreFontSize = 30.0
)

// Draw appends the frame to dl in screen space: origin at the top-left of
// the playfield canvas, y growing downward. Entities are drawn as rectangles
// centered on their position, followed by the score readout and captions.
func (s *Session) Draw(dl *core.DrawList) {
	pf := s.cfg.Playfield
	dl.Width, dl.Height = pf.Width, pf.Height

	if p, ok := s.store.Player(); ok {
		s.box(dl, p.Pos, core.V(s.cfg.Player.Width, s.cfg.Player.Height), core.ColorBlue)
	}
	for b := range s.store.Bullets() {
		s.box(dl, b.Pos, core.V(s.cfg.Bullet.Width, s.cfg.Bullet.Height), core.ColorYellow)
	}
	for e := range s.store.Enemies() {
		s.box(dl, e.Pos, core.V(s.cfg.Enemy.Width, s.cfg.Enemy.Height), core.ColorRed)
	}

	dl.Text(scorePos, s.label, scoreFontSize, core.ColorWhite)
	for _, c := range s.captions {
		dl.Text(c.Pos, c.Text, c.FontSize, c.Color)
	}
}

// ToScreen converts a world position (origin at center, y up) to screen space.
func (s *Session) ToScreen(world core.Vec2) core.Vec2 {
	pf := s.cfg.Playfield
	return core.V(world.X+pf.Width/2, pf.Height/2-world.Y)
}

func (s *Session) box(dl *core.DrawList, center, size core.Vec2, c core.Color) {
	topLeft := s.ToScreen(center).Sub(size.Scale(0.5))
	dl.Rect(topLeft, size, c)
}
