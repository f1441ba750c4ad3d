// internal/component/beam.go
package component

import "go-vertical-shooter/internal/types"

// Beam holds the state for a continuous beam weapon.
// Created lazily on the first laser shot, destroyed when the
// weapon switches to another variant.
type Beam struct {
	VisibleUntil float64 // абсолютное время, до которого луч виден
	Active       bool
	VisualID     types.EntityID // сущность с LineRender, владелец — фабрика
}

// Visible reports whether the beam should be rendered at time now.
func (b *Beam) Visible(now float64) bool {
	return b.Active && now < b.VisibleUntil
}
