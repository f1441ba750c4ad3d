// internal/component/projectile.go
package component

import "go-vertical-shooter/internal/defs"

// Projectile представляет летящий снаряд.
type Projectile struct {
	Damage        float64
	VX, VY        float64 // скорость по осям, пикселей в секунду
	RelativeAngle float64 // угловое смещение от оси ствола, радианы
	Variant       defs.WeaponVariant
}
