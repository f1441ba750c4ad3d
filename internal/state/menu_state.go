// internal/state/menu_state.go
package state

import (
	"log"

	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuState — стартовое меню
type MenuState struct {
	sm   *StateMachine
	face font.Face
}

func NewMenuState(sm *StateMachine) *MenuState {
	face, err := render.NewFontFace(18)
	if err != nil {
		log.Fatalf("failed to load menu font: %v", err)
	}
	return &MenuState{sm: sm, face: face}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	render.DrawText(screen, m.face, "VERTICAL SHOOTER",
		config.ScreenWidth/2-90, config.ScreenHeight/2-40, config.TextColor)
	render.DrawText(screen, m.face, "press ENTER to start",
		config.ScreenWidth/2-105, config.ScreenHeight/2, config.TextColor)
}

func (m *MenuState) Exit() {}
