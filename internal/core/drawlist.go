package core

// DrawKind distinguishes draw commands.
type DrawKind uint8

const (
	DrawRect DrawKind = iota // Filled rectangle
	DrawText                 // String
)

// DrawCmd is a single positioned, colored primitive in logical screen space
// (origin top-left, y grows downward).
type DrawCmd struct {
	Kind     DrawKind
	Pos      Vec2 // Top-left corner
	Size     Vec2 // Rectangle extent; unused for text
	Color    Color
	Text     string  // Text content for DrawText
	FontSize float64 // Nominal font size for DrawText
}

// DrawList collects the draw commands produced for one frame.
// Games append to it; frontends consume it. It is reused across frames.
type DrawList struct {
	Width, Height float64 // Logical canvas size
	cmds          []DrawCmd
}

// NewDrawList creates an empty list for a logical canvas of the given size.
func NewDrawList(width, height float64) *DrawList {
	return &DrawList{
		Width:  width,
		Height: height,
		cmds:   make([]DrawCmd, 0, 64),
	}
}

// Reset drops all commands, keeping the allocation.
func (d *DrawList) Reset() {
	d.cmds = d.cmds[:0]
}

// Rect appends a filled rectangle with its top-left corner at pos.
func (d *DrawList) Rect(pos, size Vec2, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawRect, Pos: pos, Size: size, Color: c})
}

// Text appends a string whose first glyph starts at pos.
func (d *DrawList) Text(pos Vec2, text string, fontSize float64, c Color) {
	d.cmds = append(d.cmds, DrawCmd{Kind: DrawText, Pos: pos, Color: c, Text: text, FontSize: fontSize})
}

// Cmds returns the commands in submission order.
// The slice is only valid until the next Reset.
func (d *DrawList) Cmds() []DrawCmd {
	return d.cmds
}

// Len returns the number of queued commands.
func (d *DrawList) Len() int {
	return len(d.cmds)
}
