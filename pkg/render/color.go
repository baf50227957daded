package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Over composites src on top of an opaque dst. src is read through
// color.Color.RGBA, so its channels are alpha-premultiplied.
func Over(src color.Color, dst color.RGBA) color.RGBA {
	r, g, b, a := src.RGBA()
	inv := 0xffff - a
	return color.RGBA{
		R: uint8((r + uint32(dst.R)*0x101*inv/0xffff) >> 8),
		G: uint8((g + uint32(dst.G)*0x101*inv/0xffff) >> 8),
		B: uint8((b + uint32(dst.B)*0x101*inv/0xffff) >> 8),
		A: 0xff,
	}
}

// ToTcell converts an opaque colour to a terminal true-colour value.
func ToTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
