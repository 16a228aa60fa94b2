// Package hud implements the arcade heads-up display: score digits, the play
// button, the menu bar, the music toggle and the get-ready/game-over banners.
package hud

import (
	"log"
	"strconv"
	"time"

	"tappy/internal/core"
	"tappy/internal/render"
	"tappy/internal/scene"
)

// Factory creates the visual elements the HUD is built from.
type Factory interface {
	Image(sheet, frame string, x, y float64) *render.Element
	Text(x, y float64, label string) *render.Element
	Container(x, y float64) *render.Element
	SetDepth(e *render.Element, depth int)
}

// Muter silences and restores the game's music.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Button names accepted by Gui.Press.
const (
	ButtonPlay     = "play"
	ButtonShop     = "shop"
	ButtonLogin    = "login"
	ButtonShare    = "share"
	ButtonFriends  = "friends"
	ButtonClose    = "close"
	ButtonMusicOn  = "musicOn"
	ButtonMusicOff = "musicOff"
)

const (
	hudDepth        = 5
	digitScale      = 0.6
	iconScale       = 0.5
	bannerHiddenY   = -50
	bannerShownY    = 60
	getReadyTime    = 2000 * time.Millisecond
	getReadyHold    = 500 * time.Millisecond
	gameOverTime    = 1000 * time.Millisecond
	menuRowFraction = 0.76
	cornerInset     = 50
)

// GuiOptions configures a Gui. Zero fields of Digits take the
// DefaultDigitConfig values; a nil Notify logs.
type GuiOptions struct {
	Digits DigitConfig
	Muter  Muter
	// Notify receives the messages of the stub menu buttons.
	Notify func(msg string)
}

// Gui wires the HUD elements to the scene data and event bus.
type Gui struct {
	scene   *scene.Scene
	factory Factory
	digits  *DigitProjector

	play       *render.Element
	playButton *render.Element
	playText   *render.Element
	menu       []*render.Element
	buttons    map[string]*render.Element

	musicBg  *render.Element
	musicOn  *render.Element
	musicOff *render.Element

	getReady *render.Element
	gameOver *render.Element
	tweens   map[string]*Tween

	muter  Muter
	muted  bool
	notify func(string)

	subs      map[string]int
	changeSub int
	closed    bool
}

// NewGui builds every HUD element, resets the score to 0 and subscribes to
// the scene.
func NewGui(f Factory, sc *scene.Scene, opts GuiOptions) *Gui {
	g := &Gui{
		scene:   sc,
		factory: f,
		buttons: map[string]*render.Element{},
		tweens:  map[string]*Tween{},
		muter:   opts.Muter,
		notify:  opts.Notify,
		subs:    map[string]int{},
	}
	if g.notify == nil {
		g.notify = func(msg string) { log.Printf("hud: %s", msg) }
	}
	if g.muter != nil {
		g.muted = g.muter.Muted()
	}

	sc.Data.Set(scene.KeyScore, 0)
	g.digits = NewDigitProjector(g.newDigitSlot, opts.Digits, func() {
		sc.Events.Emit(scene.TopicChangeEnv)
	})

	g.createPlay()
	w, h := float64(sc.Size.W), float64(sc.Size.H)
	g.createMenuButton(ButtonShop, "cart.png", "shop clicked", w*0.25, h*menuRowFraction)
	g.createMenuButton(ButtonLogin, "singleplayer.png", "login button clicked", w*0.42, h*menuRowFraction)
	g.createMenuButton(ButtonShare, "share2.png", "share button clicked", w*0.62, h*menuRowFraction)
	g.createMenuButton(ButtonFriends, "multiplayer.png", "friends button clicked", w*0.79, h*menuRowFraction)
	g.createMenuButton(ButtonClose, "cross.png", "close button clicked", w-cornerInset, cornerInset)
	g.createMusic(w-cornerInset, cornerInset)

	g.getReady = f.Image("sheet", "textGetReady.png", 420, bannerHiddenY)
	g.getReady.Name = "getReady"
	g.gameOver = f.Image("sheet", "textGameOver.png", 420, bannerHiddenY)
	g.gameOver.Name = "gameOver"

	g.changeSub = sc.Data.OnChange(g.onDataChange)
	g.subs[scene.TopicGetReady] = sc.Events.On(scene.TopicGetReady, func(...any) { g.onGetReady() })
	g.subs[scene.TopicReset] = sc.Events.On(scene.TopicReset, func(...any) { g.onReset() })
	g.subs[scene.TopicGameOver] = sc.Events.On(scene.TopicGameOver, func(...any) { g.onGameOver() })
	return g
}

func (g *Gui) newDigitSlot(i int, p core.Vec) core.Slot {
	e := g.factory.Image("sheet", render.DigitFrame(0), p.X, p.Y)
	e.Name = "score_index" + strconv.Itoa(i)
	e.Scale = digitScale
	g.factory.SetDepth(e, hudDepth)
	return e
}

func (g *Gui) createPlay() {
	g.play = g.factory.Container(420, 240)
	g.play.Name = "playContainer"
	g.playButton = g.factory.Image("sheet", "buttonLarge.png", 0, 0)
	g.playButton.Name = ButtonPlay
	g.playButton.W, g.playButton.H = 196, 70
	g.playButton.OnPress(g.onPlay)
	g.playText = g.factory.Text(0, -5, "play")
	g.play.Add(g.playButton, g.playText)
	g.buttons[ButtonPlay] = g.playButton
}

func (g *Gui) createMenuButton(name, icon, msg string, x, y float64) {
	button := g.factory.Image("ui_buttons", "yellow_button12.png", x, y)
	button.Name = name
	button.Scale = iconScale
	button.W, button.H = 100, 100
	button.OnPress(func() { g.notify(msg) })

	glyph := g.factory.Image("ui_icons", icon, x, y)
	glyph.Name = name + "Icon"
	glyph.Scale = iconScale
	glyph.Label = name

	g.menu = append(g.menu, glyph, button)
	g.buttons[name] = button
}

func (g *Gui) createMusic(x, y float64) {
	g.musicBg = g.factory.Image("ui_buttons", "yellow_button12.png", x, y)
	g.musicBg.Name = "musicbg"
	g.musicOn = g.factory.Image("musicOn", "", x, y)
	g.musicOn.Name = ButtonMusicOn
	g.musicOn.Label = "music on"
	g.musicOff = g.factory.Image("musicOff", "", x, y)
	g.musicOff.Name = ButtonMusicOff
	g.musicOff.Label = "music off"
	for _, e := range []*render.Element{g.musicBg, g.musicOn, g.musicOff} {
		e.Scale = iconScale
		e.W, e.H = 100, 100
		e.SetVisible(false)
		g.factory.SetDepth(e, hudDepth)
	}
	g.musicOn.OnPress(func() { g.setMuted(true) })
	g.musicOff.OnPress(func() { g.setMuted(false) })
	g.buttons[ButtonMusicOn] = g.musicOn
	g.buttons[ButtonMusicOff] = g.musicOff
}

func (g *Gui) setMuted(muted bool) {
	g.muted = muted
	if g.muter != nil {
		g.muter.SetMuted(muted)
	}
	g.showMusicIcon()
}

// showMusicIcon reveals the icon matching the mute state: the speaker while
// music plays, the crossed speaker while muted.
func (g *Gui) showMusicIcon() {
	g.musicOn.SetVisible(!g.muted)
	g.musicOff.SetVisible(g.muted)
}

func (g *Gui) onPlay() {
	g.play.SetVisible(false)
	for _, e := range g.menu {
		e.SetVisible(false)
	}
	g.musicBg.SetVisible(true)
	g.showMusicIcon()
	g.scene.Events.Emit(scene.TopicGetReady)
}

func (g *Gui) onDataChange(c scene.Change) {
	if c.Key != scene.KeyScore {
		return
	}
	v, ok := c.Value.(int)
	if !ok {
		log.Printf("hud: ignoring non-integer score %v (%T)", c.Value, c.Value)
		return
	}
	if err := g.digits.ScoreChanged(v); err != nil {
		log.Printf("hud: score update: %v", err)
	}
}

func (g *Gui) onGetReady() {
	g.tweens["getReady"] = &Tween{
		From:     bannerHiddenY,
		To:       bannerShownY,
		Duration: getReadyTime,
		Hold:     getReadyHold,
		Yoyo:     true,
		Ease:     BackOut,
		Apply:    g.bannerSetter(g.getReady),
		OnComplete: func() {
			g.scene.Data.Set(scene.KeyPlayDown, true)
		},
	}
}

func (g *Gui) onGameOver() {
	g.tweens["gameOver"] = &Tween{
		From:     g.gameOver.Position().Y,
		To:       bannerShownY,
		Duration: gameOverTime,
		Ease:     BackOut,
		Apply:    g.bannerSetter(g.gameOver),
	}
}

func (g *Gui) bannerSetter(e core.Sprite) func(float64) {
	return func(y float64) {
		p := e.Position()
		e.SetPosition(core.Vec{X: p.X, Y: y})
	}
}

func (g *Gui) onReset() {
	g.digits.Reset()
	g.musicBg.SetVisible(true)
	g.showMusicIcon()
	for _, e := range g.menu {
		e.SetVisible(false)
	}
	delete(g.tweens, "gameOver")
	g.bannerSetter(g.gameOver)(bannerHiddenY)
	g.scene.Data.Set(scene.KeyScore, 0)
}

// Update advances running tweens by dt.
func (g *Gui) Update(dt time.Duration) {
	for name, tw := range g.tweens {
		tw.Update(dt)
		if tw.Done() && g.tweens[name] == tw {
			delete(g.tweens, name)
		}
	}
}

// Press triggers the named button as if it had been clicked. Hidden buttons
// ignore presses.
func (g *Gui) Press(name string) bool {
	e, ok := g.buttons[name]
	if !ok {
		return false
	}
	return e.Press()
}

// ToggleMusic presses whichever music icon is currently shown.
func (g *Gui) ToggleMusic() bool {
	if g.muted {
		return g.Press(ButtonMusicOff)
	}
	return g.Press(ButtonMusicOn)
}

// Digits returns the score projector.
func (g *Gui) Digits() *DigitProjector { return g.digits }

// Button returns the element behind a named button.
func (g *Gui) Button(name string) *render.Element { return g.buttons[name] }

// Banner returns the get-ready or game-over banner element.
func (g *Gui) Banner(name string) *render.Element {
	switch name {
	case "getReady":
		return g.getReady
	case "gameOver":
		return g.gameOver
	}
	return nil
}

// Muted reports whether music is muted.
func (g *Gui) Muted() bool { return g.muted }

// Close unsubscribes the HUD from the scene.
func (g *Gui) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.scene.Data.OffChange(g.changeSub)
	for topic, id := range g.subs {
		g.scene.Events.Off(topic, id)
	}
}
