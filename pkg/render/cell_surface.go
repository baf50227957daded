package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// CellSurface maps the field onto the character grid of a terminal. Each cell
// covers a fieldW/cols × fieldH/rows patch; rectangles paint every cell they
// touch so that small pickups never vanish.
type CellSurface struct {
	screen         tcell.Screen
	fieldW, fieldH float64
	cols, rows     int
	cellW, cellH   float64
	bg             []color.RGBA // фон каждой клетки, нужен для смешивания и текста
}

// NewCellSurface creates a surface sized to the current screen.
func NewCellSurface(screen tcell.Screen, fieldW, fieldH float64) *CellSurface {
	s := &CellSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
	s.Resize()
	return s
}

// Resize re-reads the screen size. Call it on tcell.EventResize.
func (s *CellSurface) Resize() {
	cols, rows := s.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.cellW = s.fieldW / float64(cols)
	s.cellH = s.fieldH / float64(rows)
	s.bg = make([]color.RGBA, cols*rows)
}

// Grid returns the number of columns and rows in use.
func (s *CellSurface) Grid() (int, int) {
	return s.cols, s.rows
}

// ToField converts a cell to the field coordinates of its centre.
func (s *CellSurface) ToField(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

func (s *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 || x+w <= 0 || y+h <= 0 || x >= s.fieldW || y >= s.fieldH {
		return
	}
	c0 := s.clampCol(int(math.Floor(x / s.cellW)))
	c1 := s.clampCol(int(math.Ceil((x+w)/s.cellW)) - 1)
	r0 := s.clampRow(int(math.Floor(y / s.cellH)))
	r1 := s.clampRow(int(math.Ceil((y+h)/s.cellH)) - 1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

func (s *CellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if cx+r < 0 || cy+r < 0 || cx-r > s.fieldW || cy-r > s.fieldH {
		return
	}
	centreCol := s.clampCol(int(math.Floor(cx / s.cellW)))
	centreRow := s.clampRow(int(math.Floor(cy / s.cellH)))
	c0 := s.clampCol(int(math.Floor((cx - r) / s.cellW)))
	c1 := s.clampCol(int(math.Floor((cx + r) / s.cellW)))
	r0 := s.clampRow(int(math.Floor((cy - r) / s.cellH)))
	r1 := s.clampRow(int(math.Floor((cy + r) / s.cellH)))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := s.ToField(col, row)
			if math.Hypot(x-cx, y-cy) <= r || (col == centreCol && row == centreRow) {
				s.paint(col, row, c)
			}
		}
	}
}

// Text writes one rune per cell starting at the cell holding (x, y-1), so the
// baseline sits at the bottom of that row.
func (s *CellSurface) Text(str string, x, y float64, c color.Color) {
	row := int(math.Floor((y - 1) / s.cellH))
	if row < 0 || row >= s.rows {
		return
	}
	col := int(math.Floor(x / s.cellW))
	for _, ch := range str {
		if col >= s.cols {
			return
		}
		if col >= 0 {
			bg := s.bg[row*s.cols+col]
			fg := Over(c, bg)
			style := tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
			s.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

// Background returns the colour last painted into a cell.
func (s *CellSurface) Background(col, row int) color.RGBA {
	return s.bg[row*s.cols+col]
}

func (s *CellSurface) paint(col, row int, c color.Color) {
	i := row*s.cols + col
	s.bg[i] = Over(c, s.bg[i])
	style := tcell.StyleDefault.Background(ToTcell(s.bg[i]))
	s.screen.SetContent(col, row, ' ', nil, style)
}

func (s *CellSurface) clampCol(col int) int {
	return clampInt(col, 0, s.cols-1)
}

func (s *CellSurface) clampRow(row int) int {
	return clampInt(row, 0, s.rows-1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
