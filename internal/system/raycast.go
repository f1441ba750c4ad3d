// internal/system/raycast.go
package system

import (
	"go-vertical-shooter/internal/entity"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/pkg/geom"
)

// SceneRayCaster отвечает на лучевые запросы по врагам сцены.
// Враг — окружность; порядок попаданий не гарантируется
// (итерация по map), потребители не должны на него полагаться.
type SceneRayCaster struct {
	ecs *entity.ECS
}

func NewSceneRayCaster(ecs *entity.ECS) *SceneRayCaster {
	return &SceneRayCaster{ecs: ecs}
}

// CastRay возвращает все пересечения луча с врагами в пределах maxLength.
func (r *SceneRayCaster) CastRay(origin geom.Vec2, direction geom.Vec2, maxLength float64) []interfaces.HitRecord {
	dir := direction.Normalize()
	if dir.Length() == 0 || maxLength <= 0 {
		return nil
	}

	var hits []interfaces.HitRecord
	for id := range r.ecs.Enemies {
		pos, hasPos := r.ecs.Positions[id]
		if pos == nil || !hasPos {
			continue
		}
		render, hasRender := r.ecs.Renderables[id]
		if !hasRender {
			continue
		}
		radius := float64(render.Radius)

		toEnemy := geom.Vec2{X: pos.X, Y: pos.Y}.Sub(origin)
		along := toEnemy.Dot(dir)
		if along < -radius || along > maxLength+radius {
			continue
		}

		// Квадрат расстояния от центра врага до линии луча.
		perpSq := toEnemy.Dot(toEnemy) - along*along
		if perpSq > radius*radius {
			continue
		}

		distance := along
		if distance < 0 {
			distance = 0
		}
		hits = append(hits, interfaces.HitRecord{ID: id, Distance: distance})
	}
	return hits
}
