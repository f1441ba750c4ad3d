// internal/system/utils.go
package system

import (
	"go-vertical-shooter/internal/component"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/types"
)

// ApplyDamage наносит урон сущности и вешает вспышку попадания.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage float64) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || damage <= 0 {
		return
	}

	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	// Вспышка только для врагов: игрок мигает своим индикатором.
	if _, isEnemy := ecs.Enemies[entityID]; isEnemy {
		ecs.DamageFlashes[entityID] = &component.DamageFlash{
			Timer:    0,
			Duration: config.DamageFlashDuration,
		}
	}
}
