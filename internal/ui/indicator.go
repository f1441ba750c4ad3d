// internal/ui/indicator.go
package ui

import (
	"go-vertical-shooter/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	healthSegments   = 7
	healthBarHeight  = 10.0
	healthBarSpacing = 2.0
	healthTotalWidth = 140.0
)

// HealthIndicator отображает здоровье игрока в виде сегментированного бара.
type HealthIndicator struct {
	X, Y float32
}

// NewHealthIndicator создает новый индикатор здоровья.
func NewHealthIndicator(x, y float32) *HealthIndicator {
	return &HealthIndicator{X: x, Y: y}
}

// Draw рисует индикатор здоровья игрока.
func (i *HealthIndicator) Draw(screen *ebiten.Image, health, maxHealth float64) {
	percentage := 0.0
	if maxHealth > 0 && health > 0 {
		percentage = health / maxHealth
	}

	filled := int(percentage*healthSegments + 0.999)
	if filled > healthSegments {
		filled = healthSegments
	}

	segmentWidth := (healthTotalWidth - float32(healthSegments-1)*healthBarSpacing) / float32(healthSegments)
	currentX := i.X

	for j := 0; j < healthSegments; j++ {
		fill := config.HealthBarEmpty
		if j < filled {
			fill = config.HealthBarColor
		}
		vector.DrawFilledRect(screen, currentX, i.Y, segmentWidth, healthBarHeight, fill, true)
		currentX += segmentWidth + healthBarSpacing
	}
}
