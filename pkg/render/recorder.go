package render

import "image/color"

// OpKind names a recorded draw call.
type OpKind int

const (
	OpRect OpKind = iota
	OpCircle
	OpText
)

// Op is one recorded draw call.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	R          float64
	Text       string
	Color      color.Color
}

// Recorder is a Surface that keeps every call in order. It backs render-order
// assertions in tests.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Text: s, Color: c})
}

// Texts returns the recorded strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
