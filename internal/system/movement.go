// internal/system/movement.go
package system

import (
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
)

// MovementSystem двигает врагов и бонусы вниз по экрану.
// Снаряды двигает ProjectileSystem, игрока — PlayerSystem.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for id, enemy := range s.ecs.Enemies {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if pos.Y > config.ScreenHeight+config.EnemyRadius && !enemy.ReachedBottom {
			enemy.ReachedBottom = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyBrokeThrough, Data: id})
		}
	}

	for id := range s.ecs.PowerUps {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		pos.Y += config.PowerUpFallSpeed * deltaTime
		if pos.Y > config.ScreenHeight+config.PowerUpRadius {
			s.ecs.RemoveEntity(id)
		}
	}
}
