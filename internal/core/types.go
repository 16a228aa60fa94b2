package core

// Vec is a point in HUD space (pixels of the logical screen).
type Vec struct {
	X float64
	Y float64
}

// Size describes the logical dimensions of the game screen.
type Size struct {
	W int
	H int
}

// Visual is anything on the HUD that can be shown or hidden.
type Visual interface {
	SetVisible(visible bool)
	Visible() bool
}

// Slot is a single positioned digit display. Identity is stable for the
// lifetime of its owner; glyphs are decimal digits 0-9.
type Slot interface {
	Visual
	SetGlyph(d int)
	Glyph() int
}

// Sprite is a HUD element that can be repositioned and pressed.
type Sprite interface {
	Visual
	Position() Vec
	SetPosition(p Vec)
	SetFrame(frame string)
	Frame() string
}

// SlotFactory creates the digit slot for index i at position p.
type SlotFactory func(i int, p Vec) Slot
