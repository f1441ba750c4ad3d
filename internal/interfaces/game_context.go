// internal/interfaces/game_context.go
package interfaces

import "go-vertical-shooter/internal/defs"

// GameContext — узкий интерфейс игры для UI.
type GameContext interface {
	PlayerHealth() (current, max float64)
	PlayerScore() int
	CurrentWeapon() defs.WeaponVariant
	WaveNumber() int
}
