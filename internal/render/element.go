package render

import (
	"fmt"
	"strconv"
	"strings"

	"tappy/internal/core"
)

// Kind distinguishes sprite-sheet images from free text.
type Kind int

const (
	KindImage Kind = iota
	KindText
)

// Element is a retained HUD element. It satisfies core.Sprite and core.Slot
// so the same handle can back buttons, banners and score digits.
type Element struct {
	Name  string
	Kind  Kind
	Sheet string
	Label string
	Scale float64
	Depth int
	W, H  float64

	frame   string
	pos     core.Vec
	visible bool
	onPress func()
	parent  *Element
}

// Visible reports whether the element and all of its parents are shown.
func (e *Element) Visible() bool {
	for p := e; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// SetVisible shows or hides the element.
func (e *Element) SetVisible(v bool) { e.visible = v }

// Position returns the absolute position of the element.
func (e *Element) Position() core.Vec {
	if e.parent == nil {
		return e.pos
	}
	pp := e.parent.Position()
	return core.Vec{X: pp.X + e.pos.X, Y: pp.Y + e.pos.Y}
}

// SetPosition moves the element, relative to its container if it has one.
func (e *Element) SetPosition(p core.Vec) { e.pos = p }

// Frame returns the current sprite-sheet frame name.
func (e *Element) Frame() string { return e.frame }

// SetFrame switches the sprite-sheet frame.
func (e *Element) SetFrame(frame string) { e.frame = frame }

// SetGlyph points the element at the sheet frame for digit d.
func (e *Element) SetGlyph(d int) {
	if d < 0 || d > 9 {
		return
	}
	e.frame = DigitFrame(d)
}

// Glyph returns the digit the element displays, or -1 when the current frame
// is not a digit frame.
func (e *Element) Glyph() int {
	d, ok := ParseDigitFrame(e.frame)
	if !ok {
		return -1
	}
	return d
}

// OnPress makes the element interactive.
func (e *Element) OnPress(fn func()) { e.onPress = fn }

// Interactive reports whether the element reacts to presses.
func (e *Element) Interactive() bool { return e.onPress != nil }

// Press invokes the element's handler. Hidden elements ignore presses.
func (e *Element) Press() bool {
	if e.onPress == nil || !e.Visible() {
		return false
	}
	e.onPress()
	return true
}

// Add attaches child elements so that they move and hide with e.
func (e *Element) Add(children ...*Element) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = e
	}
}

// Contains reports whether (x, y) lies inside the element's scaled bounds,
// which are centred on its position.
func (e *Element) Contains(x, y float64) bool {
	scale := e.Scale
	if scale <= 0 {
		scale = 1
	}
	hw, hh := e.W*scale/2, e.H*scale/2
	p := e.Position()
	return x >= p.X-hw && x < p.X+hw && y >= p.Y-hh && y < p.Y+hh
}

// Text returns what a text painter should draw for the element.
func (e *Element) Text() string {
	if e.Kind == KindText {
		return e.Label
	}
	if d := e.Glyph(); d >= 0 {
		return strconv.Itoa(d)
	}
	if e.Label != "" {
		return e.Label
	}
	if strings.HasPrefix(e.frame, "text") {
		return FrameLabel(e.frame)
	}
	return ""
}

// DigitFrame returns the sheet frame name for digit d.
func DigitFrame(d int) string { return fmt.Sprintf("number%d.png", d) }

// ParseDigitFrame extracts the digit from a digit frame name.
func ParseDigitFrame(frame string) (int, bool) {
	rest, ok := strings.CutPrefix(frame, "number")
	if !ok {
		return 0, false
	}
	rest, ok = strings.CutSuffix(rest, ".png")
	if !ok || len(rest) != 1 || rest[0] < '0' || rest[0] > '9' {
		return 0, false
	}
	return int(rest[0] - '0'), true
}

// FrameLabel derives a readable caption from a frame name, e.g.
// "textGetReady.png" becomes "GET READY".
func FrameLabel(frame string) string {
	name := strings.TrimSuffix(frame, ".png")
	name = strings.TrimPrefix(name, "text")
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.ToUpper(b.String())
}
