// internal/system/player.go
package system

import (
	"log"
	"math"

	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/event"
	"go-vertical-shooter/internal/types"
)

// PlayerSystem двигает корабль игрока, держит его в границах экрана
// и обрабатывает столкновения с врагами и бонусами.
type PlayerSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	weaponSystem    *WeaponSystem
}

func NewPlayerSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, weaponSystem *WeaponSystem) *PlayerSystem {
	return &PlayerSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		weaponSystem:    weaponSystem,
	}
}

func (s *PlayerSystem) Update(deltaTime float64) {
	for id, player := range s.ecs.Players {
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		if pos == nil || vel == nil {
			continue
		}

		multiplier := player.SpeedMultiplier
		if multiplier <= 0 {
			multiplier = 1.0
		}
		pos.X += vel.VX * multiplier * deltaTime
		pos.Y += vel.VY * multiplier * deltaTime

		// Корабль не выходит за экран.
		pos.X = clamp(pos.X, config.PlayerRadius, config.ScreenWidth-config.PlayerRadius)
		pos.Y = clamp(pos.Y, config.PlayerRadius, config.ScreenHeight-config.PlayerRadius)

		s.collideWithEnemies(id, pos)
		s.collectPowerUps(id, player, pos)
	}
}

func (s *PlayerSystem) collideWithEnemies(playerID types.EntityID, pos *component.Position) {
	for enemyID, enemy := range s.ecs.Enemies {
		enemyPos := s.ecs.Positions[enemyID]
		if enemyPos == nil {
			continue
		}
		if dist(pos, enemyPos) > config.PlayerRadius+config.EnemyRadius {
			continue
		}

		ApplyDamage(s.ecs, playerID, enemy.ContactDamage)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: enemyID})

		if health, ok := s.ecs.Healths[playerID]; ok && health.Value <= 0 {
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDestroyed, Data: playerID})
		}
	}
}

func (s *PlayerSystem) collectPowerUps(playerID types.EntityID, player *component.Player, pos *component.Position) {
	for powerUpID, powerUp := range s.ecs.PowerUps {
		powerUpPos := s.ecs.Positions[powerUpID]
		if powerUpPos == nil {
			continue
		}
		if dist(pos, powerUpPos) > config.PlayerRadius+config.PowerUpRadius {
			continue
		}

		switch powerUp.Kind {
		case component.PowerUpRapidFire:
			s.ecs.RapidFires[playerID] = &component.RapidFireEffect{
				Timer:      config.RapidFireDuration,
				Multiplier: config.RapidFireMultiplier,
			}
		case component.PowerUpSpeedBoost:
			s.ecs.SpeedBoosts[playerID] = &component.SpeedBoostEffect{
				Timer:      config.SpeedBoostDuration,
				Multiplier: config.SpeedBoostMultiplier,
			}
			player.SpeedMultiplier = config.SpeedBoostMultiplier
		case component.PowerUpWeapon:
			if err := s.weaponSystem.SetVariant(playerID, powerUp.Variant); err != nil {
				// Дефект данных: бонус ссылается на вариант без конфигурации.
				log.Printf("PlayerSystem: weapon power-up rejected: %v", err)
			}
		}

		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: powerUp.Kind})
		s.ecs.RemoveEntity(powerUpID)
	}
}

func dist(a, b *component.Position) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
