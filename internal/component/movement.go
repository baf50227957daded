// component/movement.go
package component

import "dwarf-miner/pkg/geom"

// Position — компонент позиции (левый верхний угол)
type Position struct {
	X, Y float64
}

// Size — компонент размера
type Size struct {
	W, H float64
}

// Direction is the desired movement for the current frame, each axis in [-1, 1].
type Direction struct {
	X, Y float64
}

// Zero stops movement.
func (d *Direction) Zero() {
	d.X, d.Y = 0, 0
}

// Bounds builds the bounding box of an entity.
func Bounds(pos *Position, size *Size) geom.Rect {
	return geom.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H}
}
