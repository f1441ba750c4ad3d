// internal/state/game_state.go
package state

import (
	"log"

	game "go-vertical-shooter/internal/app"
	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/internal/defs"
	"go-vertical-shooter/internal/ui"
	"go-vertical-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *game.Game
	indicator *ui.HealthIndicator
	infoPanel *ui.InfoPanel
	face      font.Face
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic, err := game.NewGame()
	if err != nil {
		// Отсутствие конфигурации объявленного оружия — дефект данных.
		log.Fatalf("failed to start game: %v", err)
	}

	face, err := render.NewFontFace(14)
	if err != nil {
		log.Fatalf("failed to load HUD font: %v", err)
	}

	return &GameState{
		sm:        sm,
		game:      gameLogic,
		indicator: ui.NewHealthIndicator(config.IndicatorOffsetX, config.IndicatorOffsetY),
		infoPanel: ui.NewInfoPanel(face, gameLogic),
		face:      face,
	}
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleMovement()
	g.handleWeaponKeys()

	// Огонь по зажатой клавише: частоту ограничивает каденс оружия,
	// а не частота нажатий.
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		g.game.RequestFire()
	}

	g.game.Update(deltaTime)
}

func (g *GameState) handleMovement() {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += 1
	}
	g.game.SetPlayerInput(dx, dy)
}

// handleWeaponKeys — отладочное переключение оружия с клавиатуры.
func (g *GameState) handleWeaponKeys() {
	variants := map[ebiten.Key]defs.WeaponVariant{
		ebiten.Key0: defs.WeaponNone,
		ebiten.Key1: defs.WeaponBlaster,
		ebiten.Key2: defs.WeaponSpread,
		ebiten.Key3: defs.WeaponLaser,
	}
	for key, variant := range variants {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.game.SelectWeapon(variant); err != nil {
				log.Printf("GameState: weapon switch failed: %v", err)
			}
		}
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.game.Draw(screen)

	current, max := g.game.PlayerHealth()
	g.indicator.Draw(screen, current, max)
	g.infoPanel.Draw(screen)

	if g.game.IsGameOver() {
		render.DrawText(screen, g.face, "GAME OVER",
			config.ScreenWidth/2-40, config.ScreenHeight/2, config.TextColor)
	}
}

func (g *GameState) Exit() {
	// Состояние игры живёт, пока его держит пауза; чистить нечего.
}
