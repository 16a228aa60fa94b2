package term

import (
	"time"

	"tappy/internal/core"
	"tappy/internal/hud"
	"tappy/internal/render"
	"tappy/internal/scene"

	"github.com/gdamore/tcell/v2"
)

// App drives a HUD on a tcell screen.
type App struct {
	screen  tcell.Screen
	scene   *scene.Scene
	layer   *render.Layer
	gui     *hud.Gui
	painter *Painter
	step    *core.FixedStep
	buttons tcell.ButtonMask
}

// NewApp builds the HUD for sc on screen.
func NewApp(screen tcell.Screen, sc *scene.Scene, opts hud.GuiOptions, tps int) *App {
	layer := render.NewLayer()
	return &App{
		screen:  screen,
		scene:   sc,
		layer:   layer,
		gui:     hud.NewGui(layer, sc, opts),
		painter: NewPainter(screen, sc.Size),
		step:    core.NewFixedStep(tps),
	}
}

// Gui exposes the HUD controller.
func (a *App) Gui() *hud.Gui { return a.gui }

// Layer exposes the element layer.
func (a *App) Layer() *render.Layer { return a.layer }

// Handle applies a single terminal event and reports whether the app should
// keep running.
func (a *App) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.Apply(Decode(ev))
	case *tcell.EventMouse:
		// Drags repeat the held mask; only the press edge clicks.
		pressed := ev.Buttons()&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0
		a.buttons = ev.Buttons()
		if pressed {
			col, row := ev.Position()
			p := a.painter.Point(col, row)
			a.layer.Click(p.X, p.Y)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// Apply executes cmd and reports whether the app should keep running.
func (a *App) Apply(cmd Command) bool {
	switch cmd.Action {
	case ActionQuit:
		return false
	case ActionPress:
		a.gui.Press(cmd.Button)
	case ActionMusic:
		a.gui.ToggleMusic()
	case ActionScore:
		a.scene.Data.Set(scene.KeyScore, a.scene.Data.Int(scene.KeyScore)+1)
	case ActionReset:
		a.scene.Events.Emit(scene.TopicReset)
	case ActionGameOver:
		a.scene.Events.Emit(scene.TopicGameOver)
	}
	return true
}

// Tick advances the HUD by however many fixed steps are due at now and
// repaints.
func (a *App) Tick(now time.Time) {
	for n := a.step.Advance(now); n > 0; n-- {
		a.gui.Update(a.step.Step())
	}
	a.painter.Draw(a.layer)
}

// Run polls screen events and ticks the HUD until a quit command arrives.
func (a *App) Run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.step.Step())
	defer ticker.Stop()
	a.Tick(time.Now())
	for {
		select {
		case ev := <-events:
			if !a.Handle(ev) {
				return
			}
		case now := <-ticker.C:
			a.Tick(now)
		}
	}
}
