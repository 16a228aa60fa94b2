// Package term runs the HUD in a terminal: a tcell painter that projects the
// HUD layer onto character cells, and the key bindings of the terminal build.
package term

import (
	"tappy/internal/core"
	"tappy/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Painter maps HUD coordinates onto the cells of a tcell screen.
type Painter struct {
	screen tcell.Screen
	size   core.Size

	Digit  tcell.Style
	Text   tcell.Style
	Button tcell.Style
}

// NewPainter creates a painter for a HUD of the given logical size.
func NewPainter(screen tcell.Screen, size core.Size) *Painter {
	return &Painter{
		screen: screen,
		size:   size,
		Digit:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		Text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Button: tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow),
	}
}

// Cell converts a HUD position into a terminal cell.
func (p *Painter) Cell(v core.Vec) (int, int) {
	cols, rows := p.screen.Size()
	if p.size.W <= 0 || p.size.H <= 0 {
		return 0, 0
	}
	return int(v.X * float64(cols) / float64(p.size.W)), int(v.Y * float64(rows) / float64(p.size.H))
}

// Point converts a terminal cell into the HUD position at its centre.
func (p *Painter) Point(col, row int) core.Vec {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return core.Vec{}
	}
	return core.Vec{
		X: (float64(col) + 0.5) * float64(p.size.W) / float64(cols),
		Y: (float64(row) + 0.5) * float64(p.size.H) / float64(rows),
	}
}

// Draw clears the screen and paints every visible element of layer.
func (p *Painter) Draw(layer *render.Layer) {
	p.screen.Clear()
	for _, e := range layer.Elements() {
		if !e.Visible() {
			continue
		}
		label := e.Text()
		if label == "" {
			continue
		}
		style := p.Text
		switch {
		case e.Glyph() >= 0:
			style = p.Digit
		case e.Interactive():
			style = p.Button
		}
		col, row := p.Cell(e.Position())
		if e.Glyph() < 0 {
			col -= len([]rune(label)) / 2
		}
		p.put(col, row, label, style)
	}
	p.screen.Show()
}

func (p *Painter) put(col, row int, s string, style tcell.Style) {
	cols, rows := p.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, r := range s {
		if col >= 0 && col < cols {
			p.screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}
