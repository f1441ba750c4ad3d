// internal/entity/ecs.go
package entity

import (
	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	LineRenders map[types.EntityID]*component.LineRender
	Projectiles map[types.EntityID]*component.Projectile
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player
	Weapons     map[types.EntityID]*component.Weapon
	Beams       map[types.EntityID]*component.Beam
	PowerUps    map[types.EntityID]*component.PowerUp

	DamageFlashes map[types.EntityID]*component.DamageFlash
	RapidFires    map[types.EntityID]*component.RapidFireEffect
	SpeedBoosts   map[types.EntityID]*component.SpeedBoostEffect

	Wave *component.Wave
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Healths:       make(map[types.EntityID]*component.Health),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		LineRenders:   make(map[types.EntityID]*component.LineRender),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Players:       make(map[types.EntityID]*component.Player),
		Weapons:       make(map[types.EntityID]*component.Weapon),
		Beams:         make(map[types.EntityID]*component.Beam),
		PowerUps:      make(map[types.EntityID]*component.PowerUp),
		DamageFlashes: make(map[types.EntityID]*component.DamageFlash),
		RapidFires:    make(map[types.EntityID]*component.RapidFireEffect),
		SpeedBoosts:   make(map[types.EntityID]*component.SpeedBoostEffect),
		Wave:          nil,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет сущность из всех хранилищ компонентов.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.LineRenders, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Weapons, id)
	delete(ecs.Beams, id)
	delete(ecs.PowerUps, id)
	delete(ecs.DamageFlashes, id)
	delete(ecs.RapidFires, id)
	delete(ecs.SpeedBoosts, id)
}
