package input

import "dwarf-miner/internal/component"

// Key is a frontend-independent key identifier.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyUpgrade
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyUpgrade:
		return "upgrade"
	default:
		return "unknown"
	}
}

// Keyboard remembers which keys are held. Frontends feed it press and release
// events; the game loop reads it once per frame.
type Keyboard struct {
	held map[Key]bool
}

func NewKeyboard() *Keyboard {
	return &Keyboard{held: make(map[Key]bool)}
}

func (k *Keyboard) Press(key Key) {
	k.held[key] = true
}

func (k *Keyboard) Release(key Key) {
	k.held[key] = false
}

func (k *Keyboard) Held(key Key) bool {
	return k.held[key]
}

// Direction sums the arrow keys: each one adds -1 or +1 to its axis, so
// opposite keys held together cancel out.
func (k *Keyboard) Direction() component.Direction {
	var d component.Direction
	if k.held[KeyLeft] {
		d.X--
	}
	if k.held[KeyRight] {
		d.X++
	}
	if k.held[KeyUp] {
		d.Y--
	}
	if k.held[KeyDown] {
		d.Y++
	}
	return d
}
