package input

// PointerID identifies a touch or the mouse.
type PointerID int

// MousePointer is the id used for the mouse, distinct from any touch id
// ebiten hands out.
const MousePointer PointerID = -1

// PointerTracker follows at most one pointer at a time. A second pointer that
// goes down while one is tracked is ignored until the first is released.
type PointerTracker struct {
	id     PointerID
	active bool
}

// Begin starts tracking id unless another pointer is already tracked.
func (t *PointerTracker) Begin(id PointerID) bool {
	if t.active {
		return false
	}
	t.id, t.active = id, true
	return true
}

// Tracks reports whether id is the tracked pointer.
func (t *PointerTracker) Tracks(id PointerID) bool {
	return t.active && t.id == id
}

// End stops tracking id. It reports false for any other pointer.
func (t *PointerTracker) End(id PointerID) bool {
	if !t.Tracks(id) {
		return false
	}
	t.active = false
	return true
}

// Active reports whether any pointer is tracked.
func (t *PointerTracker) Active() bool {
	return t.active
}
