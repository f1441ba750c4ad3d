// internal/interfaces/collaborators.go
package interfaces

import (
	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

// SpawnCommand describes one projectile to be created by the Instantiator.
// Не хранится: потребляется немедленно при выстреле.
type SpawnCommand struct {
	RelativeAngle float64   // угловое смещение от оси ствола, радианы
	Velocity      geom.Vec2 // пикселей в секунду
	OriginOffset  geom.Vec2 // смещение точки вылета от позиции владельца
}

// HitRecord is a single intersection returned by a ray query.
// Порядок попаданий не определён.
type HitRecord struct {
	ID       types.EntityID
	Distance float64
}

// WeaponRegistry resolves a weapon variant to its definition.
type WeaponRegistry interface {
	Lookup(variant defs.WeaponVariant) (defs.WeaponDefinition, error)
}

// Instantiator creates and destroys spawned visual/projectile entities.
// Созданные сущности принадлежат фабрике и её сцене, не оружию.
type Instantiator interface {
	CreateProjectile(owner types.EntityID, def defs.WeaponDefinition, cmd SpawnCommand) types.EntityID
	CreateBeamVisual(owner types.EntityID, def defs.WeaponDefinition) types.EntityID
	Destroy(id types.EntityID)
}

// RayCaster performs a ray query against the scene and returns every hit.
type RayCaster interface {
	CastRay(origin geom.Vec2, direction geom.Vec2, maxLength float64) []HitRecord
}

// EntityDirectory resolves hit records to damageable entities and
// handles "entity destroyed" bookkeeping.
type EntityDirectory interface {
	Health(id types.EntityID) (*component.Health, bool)
	NotifyDestroyed(id types.EntityID)
}

// GlobalModifiers exposes global fire-rate modifiers (бонус Rapid Fire).
type GlobalModifiers interface {
	CurrentFireDelayMultiplier() float64
}

// Clock is the monotonic time source for cadence and beam timing.
type Clock interface {
	Now() float64        // секунды с начала игры
	FrameDelta() float64 // секунды с прошлого кадра
}
