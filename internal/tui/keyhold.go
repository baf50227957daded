package tui

import (
	"slices"

	"dwarf-miner/internal/input"
)

// KeyHolds emulates key releases for terminals, which only report presses.
// A pressed key stays held for a fixed number of frames after its last press;
// the terminal's auto-repeat keeps refreshing it.
type KeyHolds struct {
	frames int
	left   map[input.Key]int
}

func NewKeyHolds(frames int) *KeyHolds {
	if frames < 1 {
		frames = 1
	}
	return &KeyHolds{frames: frames, left: make(map[input.Key]int)}
}

// Press refreshes the hold of k. It reports true when k was not held before.
func (h *KeyHolds) Press(k input.Key) bool {
	_, held := h.left[k]
	h.left[k] = h.frames
	return !held
}

// Expire counts one frame down and returns the keys whose hold ran out,
// in key order.
func (h *KeyHolds) Expire() []input.Key {
	var released []input.Key
	for k, n := range h.left {
		if n <= 1 {
			delete(h.left, k)
			released = append(released, k)
			continue
		}
		h.left[k] = n - 1
	}
	slices.Sort(released)
	return released
}

func (h *KeyHolds) Held(k input.Key) bool {
	_, ok := h.left[k]
	return ok
}
