// internal/component/weapon.go
package component

import "go-vertical-shooter/internal/defs"

// CadenceGate хранит момент, раньше которого стрелять нельзя.
type CadenceGate struct {
	NextFireTime float64 // абсолютное время в секундах
}

// CanFire отвечает, разрешён ли выстрел в момент now.
func (g *CadenceGate) CanFire(now float64) bool {
	return now >= g.NextFireTime
}

// Advance сдвигает следующий разрешённый выстрел на delay секунд вперёд.
func (g *CadenceGate) Advance(now, delay float64) {
	g.NextFireTime = now + delay
}

// Reset делает выстрел разрешённым немедленно.
func (g *CadenceGate) Reset(now float64) {
	g.NextFireTime = now
}

// Weapon — компонент оружия на корабле игрока.
type Weapon struct {
	Variant defs.WeaponVariant
	Def     defs.WeaponDefinition
	Gate    CadenceGate
	Active  bool
}
