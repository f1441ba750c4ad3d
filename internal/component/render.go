// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}

// LineRender — отрезок для отрисовки (луч лазера).
type LineRender struct {
	StartX, StartY float64
	EndX, EndY     float64
	Width          float32
	Color          color.RGBA
	Visible        bool
}
