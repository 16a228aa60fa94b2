//go:build ebiten

package app

import (
	"image/color"
	"time"

	"tappy/internal/hud"
	"tappy/internal/render"
	"tappy/internal/scene"
	"tappy/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the HUD to the ebiten.Game interface.
type Game struct {
	scene   *scene.Scene
	layer   *render.Layer
	gui     *hud.Gui
	hud     *ui.HUD
	overlay *ui.Overlay

	tps        int
	background color.Color
}

// New constructs a Game for the provided scene.
func New(sc *scene.Scene, opts hud.GuiOptions, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	layer := render.NewLayer()
	return &Game{
		scene:      sc,
		layer:      layer,
		gui:        hud.NewGui(layer, sc, opts),
		hud:        ui.NewHUD(layer),
		overlay:    ui.NewOverlay(layer, sc.Data),
		tps:        tps,
		background: color.RGBA{R: 92, G: 172, B: 220, A: 255},
	}
}

// Update handles per-frame input and advances the HUD tweens.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.Data.Set(scene.KeyScore, g.scene.Data.Int(scene.KeyScore)+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.gui.Press(hud.ButtonPlay)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.gui.ToggleMusic()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.Events.Emit(scene.TopicReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.scene.Events.Emit(scene.TopicGameOver)
	}

	g.hud.Update()
	g.overlay.Update()
	g.gui.Update(time.Second / time.Duration(g.tps))
	return nil
}

// Draw renders the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.scene.Size.W, g.scene.Size.H
}
