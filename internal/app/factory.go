// internal/app/factory.go
package app

import (
	"math/rand"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/internal/types"
)

// SceneContainer — явный контейнер всех порождённых фабрикой сущностей.
// Передаётся фабрике при создании вместо неявного общего родителя,
// чтобы массовую очистку можно было сделать адресной.
type SceneContainer struct {
	spawned map[types.EntityID]struct{}
}

func NewSceneContainer() *SceneContainer {
	return &SceneContainer{spawned: make(map[types.EntityID]struct{})}
}

func (c *SceneContainer) add(id types.EntityID) {
	c.spawned[id] = struct{}{}
}

func (c *SceneContainer) remove(id types.EntityID) {
	delete(c.spawned, id)
}

// EntityFactory реализует interfaces.Instantiator поверх ECS.
// Все созданные сущности регистрируются в контейнере сцены.
type EntityFactory struct {
	ecs   *entity.ECS
	scene *SceneContainer
}

func NewEntityFactory(ecs *entity.ECS, scene *SceneContainer) *EntityFactory {
	return &EntityFactory{ecs: ecs, scene: scene}
}

// CreateProjectile создаёт сущность снаряда по команде спавнера.
func (f *EntityFactory) CreateProjectile(owner types.EntityID, def defs.WeaponDefinition, cmd interfaces.SpawnCommand) types.EntityID {
	id := f.ecs.NewEntity()

	x, y := 0.0, 0.0
	if pos, ok := f.ecs.Positions[owner]; ok {
		x, y = pos.X, pos.Y
	}

	f.ecs.Positions[id] = &component.Position{
		X: x + cmd.OriginOffset.X,
		Y: y + cmd.OriginOffset.Y,
	}
	f.ecs.Projectiles[id] = &component.Projectile{
		Damage:        def.DamageOnHit,
		VX:            cmd.Velocity.X,
		VY:            cmd.Velocity.Y,
		RelativeAngle: cmd.RelativeAngle,
		Variant:       def.Variant,
	}
	radiusFactor := def.ProjectileVisuals.RadiusFactor
	if radiusFactor <= 0 {
		radiusFactor = 1.0
	}
	f.ecs.Renderables[id] = &component.Renderable{
		Color:  def.ProjectileVisuals.Color,
		Radius: float32(config.ProjectileRadius * radiusFactor),
	}

	f.scene.add(id)
	return id
}

// CreateBeamVisual создаёт отрезок луча. Геометрию ему задаёт BeamResolver.
func (f *EntityFactory) CreateBeamVisual(owner types.EntityID, def defs.WeaponDefinition) types.EntityID {
	id := f.ecs.NewEntity()
	f.ecs.LineRenders[id] = &component.LineRender{
		Width:   float32(config.BeamWidth),
		Color:   def.Visuals.Color,
		Visible: false,
	}
	f.scene.add(id)
	return id
}

// Destroy удаляет порождённую сущность из ECS и контейнера сцены.
func (f *EntityFactory) Destroy(id types.EntityID) {
	f.ecs.RemoveEntity(id)
	f.scene.remove(id)
}

// CreatePowerUp роняет бонус в точке (x, y).
func (f *EntityFactory) CreatePowerUp(x, y float64) types.EntityID {
	id := f.ecs.NewEntity()

	powerUp := &component.PowerUp{}
	switch rand.Intn(3) {
	case 0:
		powerUp.Kind = component.PowerUpRapidFire
	case 1:
		powerUp.Kind = component.PowerUpSpeedBoost
	default:
		powerUp.Kind = component.PowerUpWeapon
		variants := []defs.WeaponVariant{defs.WeaponBlaster, defs.WeaponSpread, defs.WeaponLaser}
		powerUp.Variant = variants[rand.Intn(len(variants))]
	}

	f.ecs.Positions[id] = &component.Position{X: x, Y: y}
	f.ecs.PowerUps[id] = powerUp
	f.ecs.Renderables[id] = &component.Renderable{
		Color:  config.PowerUpColor,
		Radius: float32(config.PowerUpRadius),
	}

	f.scene.add(id)
	return id
}

// weaponRegistry адаптирует библиотеку определений к интерфейсу реестра.
type weaponRegistry struct{}

func (weaponRegistry) Lookup(variant defs.WeaponVariant) (defs.WeaponDefinition, error) {
	return defs.GetWeaponDefinition(variant)
}

// entityDirectory резолвит попадания в живые сущности и ведёт учёт
// уничтоженных.
type entityDirectory struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func (d *entityDirectory) Health(id types.EntityID) (*component.Health, bool) {
	health, ok := d.ecs.Healths[id]
	return health, ok
}

func (d *entityDirectory) NotifyDestroyed(id types.EntityID) {
	d.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: id})
}

// gameClock — монотонные игровые часы, продвигаются раз в кадр.
type gameClock struct {
	now        float64
	frameDelta float64
}

func (c *gameClock) Advance(deltaTime float64) {
	c.now += deltaTime
	c.frameDelta = deltaTime
}

func (c *gameClock) Now() float64 {
	return c.now
}

func (c *gameClock) FrameDelta() float64 {
	return c.frameDelta
}
