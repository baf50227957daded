package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUDTextScale enlarges the 7x13 bitmap font to roughly the 20px HUD size.
const HUDTextScale = 1.5

// EbitenSurface draws onto an ebiten image. The target is swapped every frame
// because ebiten hands a fresh screen image to Draw.
type EbitenSurface struct {
	dst       *ebiten.Image
	face      text.Face
	textScale float64
}

// NewEbitenSurface creates a surface using the basic bitmap font.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		face:      text.NewGoXFace(basicfont.Face7x13),
		textScale: HUDTextScale,
	}
}

// Target sets the image subsequent calls draw onto.
func (s *EbitenSurface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *EbitenSurface) Text(str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(s.textScale, s.textScale)
	// text/v2 кладёт верхний край строки в точку, нам нужна базовая линия
	op.GeoM.Translate(x, y-s.face.Metrics().HAscent*s.textScale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}
