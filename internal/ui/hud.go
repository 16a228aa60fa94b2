//go:build ebiten

package ui

import (
	"image/color"

	"tappy/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD paints a render.Layer with ebiten and routes mouse clicks into it.
type HUD struct {
	layer *render.Layer
	pixel *ebiten.Image
}

// NewHUD constructs a HUD painter for layer.
func NewHUD(layer *render.Layer) *HUD {
	h := &HUD{layer: layer}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update presses the element under the cursor on a left click.
func (h *HUD) Update() {
	if h == nil || h.layer == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	h.layer.Click(float64(mx), float64(my))
}

// Draw paints every visible element in depth order.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.layer == nil {
		return
	}
	for _, e := range h.layer.Elements() {
		if !e.Visible() {
			continue
		}
		if e.W > 0 && e.H > 0 && e.Glyph() < 0 {
			h.drawBox(screen, e)
		}
		h.drawLabel(screen, e)
	}
}

func (h *HUD) drawBox(screen *ebiten.Image, e *render.Element) {
	bg := color.RGBA{R: 240, G: 196, B: 32, A: 255}
	if e.Sheet == "sheet" {
		bg = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	}
	scale := elementScale(e)
	w, hgt := e.W*scale, e.H*scale
	p := e.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, hgt)
	op.GeoM.Translate(p.X-w/2, p.Y-hgt/2)
	op.ColorM.Scale(float64(bg.R)/255.0, float64(bg.G)/255.0, float64(bg.B)/255.0, float64(bg.A)/255.0)
	screen.DrawImage(h.pixel, op)
}

func (h *HUD) drawLabel(screen *ebiten.Image, e *render.Element) {
	label := e.Text()
	if label == "" {
		return
	}
	face := basicfont.Face7x13
	fg := color.RGBA{R: 240, G: 240, B: 240, A: 255}
	mag := 2.0
	if e.Glyph() >= 0 {
		mag = 5 * elementScale(e)
		fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	} else if e.Interactive() {
		fg = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	}
	bounds := text.BoundString(face, label)
	p := e.Position()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, float64(bounds.Dy())/2)
	op.GeoM.Scale(mag, mag)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorM.ScaleWithColor(fg)
	text.DrawWithOptions(screen, label, face, op)
}

func elementScale(e *render.Element) float64 {
	if e.Scale <= 0 {
		return 1
	}
	return e.Scale
}
