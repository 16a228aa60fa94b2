package render

import (
	"testing"

	"tappy/internal/core"
)

func TestElementGlyphRoundTrip(t *testing.T) {
	l := NewLayer()
	e := l.Image("sheet", DigitFrame(0), 30, 40)
	for d := 0; d <= 9; d++ {
		e.SetGlyph(d)
		if got := e.Glyph(); got != d {
			t.Fatalf("glyph %d read back as %d", d, got)
		}
	}
	e.SetGlyph(12)
	if got := e.Glyph(); got != 9 {
		t.Fatalf("out-of-range glyph must be ignored, got %d", got)
	}
	e.SetFrame("textGetReady.png")
	if got := e.Glyph(); got != -1 {
		t.Fatalf("non-digit frame should report -1, got %d", got)
	}
}

func TestContainerPropagatesVisibilityAndPosition(t *testing.T) {
	l := NewLayer()
	play := l.Container(420, 240)
	button := l.Image("sheet", "buttonLarge.png", 0, 0)
	label := l.Text(0, -5, "play")
	play.Add(button, label)

	if got := label.Position(); got != (core.Vec{X: 420, Y: 235}) {
		t.Fatalf("child position should be relative to container, got %+v", got)
	}
	play.SetVisible(false)
	if button.Visible() || label.Visible() {
		t.Fatal("hiding a container must hide its children")
	}
	play.SetVisible(true)
	if !button.Visible() {
		t.Fatal("showing the container should reveal children again")
	}
}

func TestHitTestPicksTopMostVisibleInteractive(t *testing.T) {
	l := NewLayer()
	var pressed []string
	low := l.Image("ui_buttons", "yellow_button12.png", 100, 100)
	low.W, low.H = 40, 40
	low.OnPress(func() { pressed = append(pressed, "low") })
	high := l.Image("ui_buttons", "yellow_button12.png", 100, 100)
	high.W, high.H = 20, 20
	l.SetDepth(high, 5)
	high.OnPress(func() { pressed = append(pressed, "high") })

	if !l.Click(100, 100) {
		t.Fatal("expected a hit at the shared centre")
	}
	if !l.Click(115, 100) {
		t.Fatal("expected the larger element to be hit outside the smaller one")
	}
	high.SetVisible(false)
	l.Click(100, 100)
	if l.Click(300, 300) {
		t.Fatal("no element should be hit far away")
	}

	want := []string{"high", "low", "low"}
	if len(pressed) != len(want) {
		t.Fatalf("pressed %v, want %v", pressed, want)
	}
	for i := range want {
		if pressed[i] != want[i] {
			t.Fatalf("pressed %v, want %v", pressed, want)
		}
	}
}

func TestContainsHonoursScale(t *testing.T) {
	l := NewLayer()
	e := l.Image("ui_buttons", "yellow_button12.png", 0, 0)
	e.W, e.H = 100, 100
	e.Scale = 0.5
	if !e.Contains(24, 24) {
		t.Fatal("point inside the scaled bounds should hit")
	}
	if e.Contains(30, 0) {
		t.Fatal("point outside the scaled bounds should miss")
	}
}

func TestElementText(t *testing.T) {
	l := NewLayer()
	cases := []struct {
		elem *Element
		want string
	}{
		{l.Image("sheet", DigitFrame(7), 0, 0), "7"},
		{l.Image("sheet", "textGetReady.png", 0, 0), "GET READY"},
		{l.Image("sheet", "textGameOver.png", 0, 0), "GAME OVER"},
		{l.Text(0, 0, "play"), "play"},
		{l.Image("ui_buttons", "yellow_button12.png", 0, 0), ""},
	}
	for _, tc := range cases {
		if got := tc.elem.Text(); got != tc.want {
			t.Fatalf("Text() = %q, want %q", got, tc.want)
		}
	}
}

func TestFindByName(t *testing.T) {
	l := NewLayer()
	e := l.Image("ui_icons", "cart.png", 0, 0)
	e.Name = "shop"
	if l.Find("shop") != e {
		t.Fatal("Find should return the named element")
	}
	if l.Find("missing") != nil {
		t.Fatal("Find should return nil for unknown names")
	}
}
