// internal/system/weapon.go
package system

import (
	"fmt"
	"image/color"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

// WeaponSystem — контроллер оружия игрока: выбирает вариант, следит за
// каденсом и разводит выстрел по снарядам или лучу.
type WeaponSystem struct {
	ecs        *entity.ECS
	registry   interfaces.WeaponRegistry
	modifiers  interfaces.GlobalModifiers
	clock      interfaces.Clock
	dispatcher *event.Dispatcher

	spawner *ProjectileSpawner
	beam    *BeamResolver
}

func NewWeaponSystem(ecs *entity.ECS,
	registry interfaces.WeaponRegistry,
	instantiator interfaces.Instantiator,
	raycaster interfaces.RayCaster,
	directory interfaces.EntityDirectory,
	modifiers interfaces.GlobalModifiers,
	clock interfaces.Clock,
	dispatcher *event.Dispatcher) *WeaponSystem {
	ws := &WeaponSystem{
		ecs:        ecs,
		registry:   registry,
		modifiers:  modifiers,
		clock:      clock,
		dispatcher: dispatcher,
		spawner:    NewProjectileSpawner(instantiator),
		beam:       NewBeamResolver(ecs, instantiator, raycaster, directory, clock),
	}
	dispatcher.Subscribe(event.FireRequested, ws)
	return ws
}

// OnEvent принимает запросы на выстрел от внешнего триггера.
func (s *WeaponSystem) OnEvent(e event.Event) {
	if e.Type != event.FireRequested {
		return
	}
	if owner, ok := e.Data.(types.EntityID); ok {
		s.Fire(owner)
	}
}

// SetVariant переключает оружие владельца на вариант variant.
// None деактивирует оружие. Для остальных вариантов конфигурация
// обязана существовать в реестре: её отсутствие — дефект данных,
// ошибка уходит вызывающему, дефолты не подставляются.
func (s *WeaponSystem) SetVariant(owner types.EntityID, variant defs.WeaponVariant) error {
	weapon, ok := s.ecs.Weapons[owner]
	if !ok {
		weapon = &component.Weapon{}
		s.ecs.Weapons[owner] = weapon
	}

	// Прежнее визуальное состояние сбрасывается при любой смене.
	s.beam.Deactivate(owner)

	if variant == defs.WeaponNone {
		weapon.Variant = variant
		weapon.Def = defs.WeaponDefinition{}
		weapon.Active = false
		s.applyShipTint(owner, config.PlayerColor)
		s.dispatcher.Dispatch(event.Event{Type: event.WeaponChanged, Data: variant})
		return nil
	}

	def, err := s.registry.Lookup(variant)
	if err != nil {
		return fmt.Errorf("set weapon variant %s: %w", variant, err)
	}

	weapon.Variant = variant
	weapon.Def = def
	weapon.Active = true
	// Смена оружия даёт право на немедленный выстрел.
	weapon.Gate.Reset(s.clock.Now())

	s.applyShipTint(owner, def.Visuals.Color)
	s.dispatcher.Dispatch(event.Event{Type: event.WeaponChanged, Data: variant})
	return nil
}

// Fire выполняет одну попытку выстрела. Молчаливый no-op, пока оружие
// неактивно или каденс не истёк — это и есть ограничение скорострельности.
func (s *WeaponSystem) Fire(owner types.EntityID) {
	weapon, ok := s.ecs.Weapons[owner]
	if !ok || !weapon.Active {
		return
	}
	now := s.clock.Now()
	if !weapon.Gate.CanFire(now) {
		return
	}

	multiplier := s.modifiers.CurrentFireDelayMultiplier()

	switch weapon.Variant {
	case defs.WeaponBlaster:
		s.spawner.Spawn(owner, weapon.Def, 0)
		weapon.Gate.Advance(now, weapon.Def.DelayBetweenShots*multiplier)

	case defs.WeaponSpread:
		base := 0.0
		side := geom.DegToRad(config.SpreadShotAngle)
		s.spawner.Spawn(owner, weapon.Def, base)
		s.spawner.Spawn(owner, weapon.Def, +side)
		s.spawner.Spawn(owner, weapon.Def, -side)
		weapon.Gate.Advance(now, weapon.Def.DelayBetweenShots*multiplier)

	case defs.WeaponLaser:
		// Луч сам двигает каденс внутри Activate.
		s.beam.Activate(owner, weapon, multiplier)

	case defs.WeaponPhaser, defs.WeaponMissile, defs.WeaponShield,
		defs.WeaponRapid, defs.WeaponSpeed:
		// Зарезервированные варианты: принимаются без ошибки,
		// поведение ещё не назначено.

	case defs.WeaponNone:
		// Недостижимо при Active, ветка для полноты switch.
	}
}

// Update обновляет покадровое состояние (видимость и геометрию луча).
func (s *WeaponSystem) Update(deltaTime float64) {
	s.beam.Update()
}

// BeamVisible сообщает, виден ли сейчас луч владельца (для отрисовки и UI).
func (s *WeaponSystem) BeamVisible(owner types.EntityID) bool {
	return s.beam.Visible(owner)
}

func (s *WeaponSystem) applyShipTint(owner types.EntityID, tint color.RGBA) {
	if render, ok := s.ecs.Renderables[owner]; ok {
		render.Color = tint
	}
}
