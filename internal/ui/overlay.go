//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"tappy/internal/render"
	"tappy/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the HUD: hit boxes of
// interactive elements and the raw scene data.
type Overlay struct {
	layer     *render.Layer
	data      *scene.Data
	showBoxes bool
	showData  bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(layer *render.Layer, data *scene.Data) *Overlay {
	return &Overlay{layer: layer, data: data}
}

// Update toggles the overlay layers with F1 and F2.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showBoxes = !o.showBoxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showData = !o.showData
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showBoxes && o.layer != nil {
		for _, e := range o.layer.Elements() {
			if !e.Interactive() || !e.Visible() {
				continue
			}
			scale := elementScale(e)
			w, h := float32(e.W*scale), float32(e.H*scale)
			p := e.Position()
			vector.StrokeRect(screen, float32(p.X)-w/2, float32(p.Y)-h/2, w, h, 1, color.RGBA{R: 255, G: 64, B: 64, A: 255}, false)
		}
	}
	if o.showData && o.data != nil {
		msg := fmt.Sprintf("score=%d playDown=%v", o.data.Int(scene.KeyScore), o.data.Bool(scene.KeyPlayDown))
		ebitenutil.DebugPrintAt(screen, msg, 4, screen.Bounds().Dy()-16)
	}
}
