package render

import "image/color"

// Surface is the set of drawing primitives the game issues every frame.
// Coordinates are field units with the origin in the top-left corner.
// Text is positioned by its baseline.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	Text(s string, x, y float64, c color.Color)
}
