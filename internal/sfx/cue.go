package sfx

// Cue identifies a sound effect.
type Cue int

const (
	CueCollect Cue = iota // mineral picked up
	CueUpgrade            // upgrade granted
	CueDenied             // upgrade refused
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueCollect, CueUpgrade, CueDenied}

func (c Cue) String() string {
	switch c {
	case CueCollect:
		return "collect"
	case CueUpgrade:
		return "upgrade"
	case CueDenied:
		return "denied"
	default:
		return "unknown"
	}
}
