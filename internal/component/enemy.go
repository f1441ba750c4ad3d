package component

// Enemy представляет вражескую сущность, спускающуюся сверху.
type Enemy struct {
	ContactDamage float64 // Урон игроку при столкновении
	ScoreValue    int
	ReachedBottom bool // Ушёл ли враг за нижний край экрана
}
