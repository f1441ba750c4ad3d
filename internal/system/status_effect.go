// internal/system/status_effect.go
package system

import (
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
)

// StatusEffectSystem управляет жизненным циклом временных бонусов
// и реализует глобальный множитель задержки стрельбы.
type StatusEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStatusEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for id, effect := range s.ecs.RapidFires {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.RapidFires, id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpExpired, Data: id})
		}
	}

	for id, effect := range s.ecs.SpeedBoosts {
		effect.Timer -= deltaTime
		if effect.Timer <= 0 {
			delete(s.ecs.SpeedBoosts, id)
			if player, ok := s.ecs.Players[id]; ok {
				player.SpeedMultiplier = 1.0
			}
			s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpExpired, Data: id})
		}
	}
}

// CurrentFireDelayMultiplier возвращает действующий множитель задержки
// между выстрелами. Без активных эффектов — 1.0.
func (s *StatusEffectSystem) CurrentFireDelayMultiplier() float64 {
	multiplier := 1.0
	for _, effect := range s.ecs.RapidFires {
		multiplier *= effect.Multiplier
	}
	return multiplier
}
