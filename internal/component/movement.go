// component/movement.go
package component

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пикселей в секунду по осям)
type Velocity struct {
	VX, VY float64
}
