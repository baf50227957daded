// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки прямоугольной сущности
type Renderable struct {
	Color  color.RGBA
	Accent *Accent // Необязательный внутренний прямоугольник
}

// Accent is drawn on top of the body, offset from the entity position.
type Accent struct {
	OffsetX, OffsetY float64
	W, H             float64
	Color            color.RGBA
}
