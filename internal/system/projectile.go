// internal/system/projectile.go
package system

import (
	"math"

	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/types"
)

// за сколько пикселей за краем экрана снаряд считается потерянным
const projectileCullMargin = 40.0

// ProjectileSystem управляет полётом снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		pos.X += proj.VX * deltaTime
		pos.Y += proj.VY * deltaTime

		if pos.X < -projectileCullMargin || pos.X > config.ScreenWidth+projectileCullMargin ||
			pos.Y < -projectileCullMargin || pos.Y > config.ScreenHeight+projectileCullMargin {
			s.ecs.RemoveEntity(id)
			continue
		}

		if enemyID, hit := s.findContact(id); hit {
			s.hitTarget(id, enemyID, proj.Damage)
		}
	}
}

// findContact ищет первого врага, которого задевает снаряд.
func (s *ProjectileSystem) findContact(projectileID types.EntityID) (types.EntityID, bool) {
	pos := s.ecs.Positions[projectileID]
	for enemyID := range s.ecs.Enemies {
		enemyPos, hasPos := s.ecs.Positions[enemyID]
		if !hasPos || enemyPos == nil {
			continue
		}
		radius := config.EnemyRadius
		if render, ok := s.ecs.Renderables[enemyID]; ok {
			radius = float64(render.Radius)
		}

		dx := enemyPos.X - pos.X
		dy := enemyPos.Y - pos.Y
		if math.Sqrt(dx*dx+dy*dy) <= radius+config.ProjectileRadius {
			return enemyID, true
		}
	}
	return 0, false
}

func (s *ProjectileSystem) hitTarget(projectileID, enemyID types.EntityID, damage float64) {
	ApplyDamage(s.ecs, enemyID, damage)
	s.ecs.RemoveEntity(projectileID)

	if health, exists := s.ecs.Healths[enemyID]; exists && health.Value <= 0 {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemyID})
	}
}
