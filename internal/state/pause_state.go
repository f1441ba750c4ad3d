// internal/state/pause_state.go
package state

import (
	"log"

	"go-vertical-shooter/internal/config"
	"go-vertical-shooter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// PauseState — пауза поверх игры
type PauseState struct {
	sm       *StateMachine
	previous *GameState
	face     font.Face
}

func NewPauseState(sm *StateMachine, previous *GameState) *PauseState {
	face, err := render.NewFontFace(18)
	if err != nil {
		log.Fatalf("failed to load pause font: %v", err)
	}
	return &PauseState{sm: sm, previous: previous, face: face}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.SetState(p.previous)
	}
}

func (p *PauseState) Draw(screen *ebiten.Image) {
	// Игра остаётся на экране, поверх — надпись паузы.
	p.previous.Draw(screen)
	render.DrawText(screen, p.face, "PAUSED",
		config.ScreenWidth/2-35, config.ScreenHeight/2, config.TextColor)
}

func (p *PauseState) Exit() {}
