// internal/system/render.go
package system

import (
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует сущности
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	// Лучи рисуются под остальными сущностями.
	for _, line := range s.ecs.LineRenders {
		if !line.Visible {
			continue
		}
		vector.StrokeLine(screen,
			float32(line.StartX), float32(line.StartY),
			float32(line.EndX), float32(line.EndY),
			line.Width, line.Color, true)
	}

	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos || pos == nil {
			continue
		}

		fill := render.Color
		// Вспышка урона перекрывает базовый цвет.
		if _, flashing := s.ecs.DamageFlashes[id]; flashing {
			fill = config.DamageFlashTint
		}

		if render.HasStroke {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius+2, config.TextColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, fill, true)
	}
}
