// Package scene holds the scene-wide state shared by HUD and gameplay: a
// data bag with change notifications and a topic event bus.
package scene

import "tappy/internal/core"

// Scene groups the shared data bag, the event bus and the screen size.
type Scene struct {
	Data   *Data
	Events *Events
	Size   core.Size
}

// New returns a scene of the given logical size.
func New(size core.Size) *Scene {
	if size.W <= 0 {
		size.W = 840
	}
	if size.H <= 0 {
		size.H = 480
	}
	return &Scene{Data: NewData(), Events: NewEvents(), Size: size}
}
