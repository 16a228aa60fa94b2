package render

import (
	"sort"

	"tappy/internal/core"
)

// Layer owns every element of the HUD and acts as the visual element factory.
type Layer struct {
	elements []*Element
	dirty    bool
}

// NewLayer returns an empty layer.
func NewLayer() *Layer { return &Layer{} }

// Image creates a visible sprite-sheet element at (x, y).
func (l *Layer) Image(sheet, frame string, x, y float64) *Element {
	e := &Element{
		Kind:    KindImage,
		Sheet:   sheet,
		Scale:   1,
		frame:   frame,
		pos:     core.Vec{X: x, Y: y},
		visible: true,
	}
	l.add(e)
	return e
}

// Text creates a visible text element at (x, y).
func (l *Layer) Text(x, y float64, label string) *Element {
	e := &Element{
		Kind:    KindText,
		Label:   label,
		Scale:   1,
		pos:     core.Vec{X: x, Y: y},
		visible: true,
	}
	l.add(e)
	return e
}

// Container creates an invisible-by-nature grouping element at (x, y).
func (l *Layer) Container(x, y float64) *Element {
	e := &Element{Scale: 1, pos: core.Vec{X: x, Y: y}, visible: true}
	l.add(e)
	return e
}

func (l *Layer) add(e *Element) {
	l.elements = append(l.elements, e)
	l.dirty = true
}

// Elements returns every element sorted by ascending depth; creation order
// breaks ties.
func (l *Layer) Elements() []*Element {
	if l.dirty {
		sort.SliceStable(l.elements, func(i, j int) bool {
			return l.elements[i].Depth < l.elements[j].Depth
		})
		l.dirty = false
	}
	return l.elements
}

// SetDepth changes an element's depth and schedules a re-sort.
func (l *Layer) SetDepth(e *Element, depth int) {
	e.Depth = depth
	l.dirty = true
}

// HitTest returns the top-most visible interactive element at (x, y).
func (l *Layer) HitTest(x, y float64) *Element {
	elems := l.Elements()
	for i := len(elems) - 1; i >= 0; i-- {
		e := elems[i]
		if !e.Interactive() || !e.Visible() {
			continue
		}
		if e.Contains(x, y) {
			return e
		}
	}
	return nil
}

// Find returns the first element with the given name.
func (l *Layer) Find(name string) *Element {
	for _, e := range l.elements {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Click presses the element under (x, y) and reports whether one was hit.
func (l *Layer) Click(x, y float64) bool {
	e := l.HitTest(x, y)
	if e == nil {
		return false
	}
	return e.Press()
}
