// internal/system/beam.go
package system

import (
	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

// BeamResolver manages the continuous beam of the laser weapon:
// visibility window, damage ticks and hit resolution.
type BeamResolver struct {
	ecs          *entity.ECS
	instantiator interfaces.Instantiator
	raycaster    interfaces.RayCaster
	directory    interfaces.EntityDirectory
	clock        interfaces.Clock
}

func NewBeamResolver(ecs *entity.ECS,
	instantiator interfaces.Instantiator,
	raycaster interfaces.RayCaster,
	directory interfaces.EntityDirectory,
	clock interfaces.Clock) *BeamResolver {
	return &BeamResolver{
		ecs:          ecs,
		instantiator: instantiator,
		raycaster:    raycaster,
		directory:    directory,
		clock:        clock,
	}
}

// Activate fires the beam for one cadence tick: refreshes the visibility
// window, applies damage to everything the ray hits and advances the gate.
func (b *BeamResolver) Activate(owner types.EntityID, weapon *component.Weapon, delayMultiplier float64) {
	now := b.clock.Now()

	beam, ok := b.ecs.Beams[owner]
	if !ok {
		// Ленивое создание: визуальный ресурс луча появляется
		// при первом выстреле и живёт до смены оружия.
		beam = &component.Beam{
			VisualID: b.instantiator.CreateBeamVisual(owner, weapon.Def),
		}
		b.ecs.Beams[owner] = beam
	}

	effectiveDelay := weapon.Def.DelayBetweenShots * delayMultiplier

	// Луч должен быть заметен даже при нулевой задержке, а при
	// ненулевой — не мерцать на границе тика.
	visible := effectiveDelay + config.BeamFlickerEpsilon
	if visible < config.BeamVisualPersist {
		visible = config.BeamVisualPersist
	}
	beam.VisibleUntil = now + visible
	beam.Active = true

	// Нулевая задержка вырождается в покадровый тик, иначе урон
	// остановился бы вместе с делением на ноль.
	tick := effectiveDelay
	if tick <= 0 {
		tick = b.clock.FrameDelta()
	}
	damage := weapon.Def.DamageOnHit
	if weapon.Def.DamagePerSecond > 0 {
		damage = weapon.Def.DamagePerSecond * tick
	}

	if damage > 0 {
		b.resolveHits(owner, damage)
	}

	// Каденс двигается один раз на активацию, не на попадание.
	weapon.Gate.Advance(now, effectiveDelay)
}

func (b *BeamResolver) resolveHits(owner types.EntityID, damage float64) {
	origin := b.muzzlePoint(owner)
	for _, hit := range b.raycaster.CastRay(origin, weaponForward, config.BeamRange) {
		health, ok := b.directory.Health(hit.ID)
		if !ok {
			// Декорация или уже удалённая сущность — молча пропускаем.
			continue
		}
		health.Value -= damage
		if _, isEnemy := b.ecs.Enemies[hit.ID]; isEnemy {
			b.ecs.DamageFlashes[hit.ID] = &component.DamageFlash{
				Timer:    0,
				Duration: config.DamageFlashDuration,
			}
		}
		if health.Value <= 0 {
			b.directory.NotifyDestroyed(hit.ID)
		}
	}
}

// Update синхронизирует отрезок луча с позицией владельца и окном
// видимости. Вызывается каждый кадр из игрового цикла.
func (b *BeamResolver) Update() {
	now := b.clock.Now()
	for owner, beam := range b.ecs.Beams {
		line, ok := b.ecs.LineRenders[beam.VisualID]
		if !ok {
			continue
		}
		origin := b.muzzlePoint(owner)
		end := origin.Add(weaponForward.Scale(config.BeamRange))
		line.StartX, line.StartY = origin.X, origin.Y
		line.EndX, line.EndY = end.X, end.Y
		line.Visible = beam.Visible(now)
	}
}

// Visible reports whether the owner's beam should currently be drawn.
func (b *BeamResolver) Visible(owner types.EntityID) bool {
	beam, ok := b.ecs.Beams[owner]
	return ok && beam.Visible(b.clock.Now())
}

// Deactivate освобождает визуальный ресурс и сбрасывает состояние луча.
func (b *BeamResolver) Deactivate(owner types.EntityID) {
	beam, ok := b.ecs.Beams[owner]
	if !ok {
		return
	}
	b.instantiator.Destroy(beam.VisualID)
	delete(b.ecs.Beams, owner)
}

func (b *BeamResolver) muzzlePoint(owner types.EntityID) geom.Vec2 {
	pos, ok := b.ecs.Positions[owner]
	if !ok {
		return geom.Vec2{}
	}
	return geom.Vec2{X: pos.X, Y: pos.Y}.Add(weaponForward.Scale(config.MuzzleOffset))
}
