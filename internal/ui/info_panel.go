// internal/ui/info_panel.go
package ui

import (
	"fmt"

	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/interfaces"
	"go-vertical-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// InfoPanel выводит счёт, номер волны и текущее оружие.
type InfoPanel struct {
	face font.Face
	game interfaces.GameContext
}

func NewInfoPanel(face font.Face, game interfaces.GameContext) *InfoPanel {
	return &InfoPanel{face: face, game: game}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	line := fmt.Sprintf("SCORE %06d  WAVE %d  WEAPON %s",
		p.game.PlayerScore(), p.game.WaveNumber(), p.game.CurrentWeapon())
	render.DrawText(screen, p.face, line, config.IndicatorOffsetX, config.ScreenHeight-12, config.TextColor)
}
