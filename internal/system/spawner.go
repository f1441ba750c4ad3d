// internal/system/spawner.go
package system

import (
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/internal/types"
	"go-vertical-shooter/pkg/geom"
)

// weaponForward — ось ствола: вверх экрана.
var weaponForward = geom.Vec2{X: 0, Y: -1}

// ProjectileSpawner превращает выстрел в команды создания снарядов.
// Сами сущности снарядов создаёт и владеет ими Instantiator.
type ProjectileSpawner struct {
	instantiator interfaces.Instantiator
}

func NewProjectileSpawner(instantiator interfaces.Instantiator) *ProjectileSpawner {
	return &ProjectileSpawner{instantiator: instantiator}
}

// Spawn вычисляет параметры одного снаряда и передаёт их фабрике.
// angleOffset — смещение от оси ствола в радианах: 0 для одиночного
// выстрела, ±10° для боковых снарядов веера. Боковые скорости всегда
// получаются поворотом одного и того же базового вектора.
func (s *ProjectileSpawner) Spawn(owner types.EntityID, def defs.WeaponDefinition, angleOffset float64) interfaces.SpawnCommand {
	base := weaponForward.Scale(def.ProjectileVelocity)
	cmd := interfaces.SpawnCommand{
		RelativeAngle: angleOffset,
		Velocity:      base.Rotate(angleOffset),
		OriginOffset:  weaponForward.Scale(config.MuzzleOffset),
	}
	s.instantiator.CreateProjectile(owner, def, cmd)
	return cmd
}
