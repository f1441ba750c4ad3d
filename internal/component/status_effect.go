// internal/component/status_effect.go
package component

import "go-vertical-shooter/internal/defs"

// RapidFireEffect ускоряет стрельбу: эффективная задержка между выстрелами
// умножается на Multiplier (< 1), пока не истечёт Timer.
type RapidFireEffect struct {
	Timer      float64 // Сколько времени осталось до конца эффекта
	Multiplier float64 // Множитель задержки (например, 0.5)
}

// SpeedBoostEffect ускоряет движение корабля.
type SpeedBoostEffect struct {
	Timer      float64
	Multiplier float64
}

// PowerUpKind — вид падающего бонуса.
type PowerUpKind string

const (
	PowerUpRapidFire  PowerUpKind = "RAPID_FIRE"
	PowerUpSpeedBoost PowerUpKind = "SPEED_BOOST"
	PowerUpWeapon     PowerUpKind = "WEAPON"
)

// PowerUp — падающий бонус на поле.
type PowerUp struct {
	Kind    PowerUpKind
	Variant defs.WeaponVariant // только для PowerUpWeapon
}
