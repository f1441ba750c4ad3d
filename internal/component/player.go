package component

// Player — компонент корабля игрока.
type Player struct {
	Score           int
	SpeedMultiplier float64 // множитель скорости движения (бонус Speed)
}
