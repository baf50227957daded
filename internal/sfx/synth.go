package sfx

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// oscillator produces a fixed number of samples of a periodic wave.
type oscillator struct {
	freq     float64
	phase    float64
	wave     Wave
	total    int
	position int
	rate     beep.SampleRate
}

// NewTone returns a streamer playing freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, wave: wave, total: rate.N(d), rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if o.position >= o.total {
			break
		}
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0], samples[i][1] = v, v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
		n++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// fade ramps the first attack samples up and the last release samples down
// so that notes start and stop without clicks.
type fade struct {
	s               beep.Streamer
	total           int
	attack, release int
	position        int
}

func newFade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, total: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.attack > 0 && f.position < f.attack {
			g = float64(f.position) / float64(f.attack)
		}
		if left := f.total - f.position; f.release > 0 && left < f.release {
			g = math.Min(g, float64(left)/float64(f.release))
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return newFade(NewTone(freq, d, wave, rate), d, 5*time.Millisecond, 20*time.Millisecond, rate)
}

// Synthesize builds the streamer for a cue at the given volume in [0, 1].
func Synthesize(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch cue {
	case CueCollect:
		s = beep.Seq(
			note(880, 60*time.Millisecond, WaveSine, rate),
			note(1320, 90*time.Millisecond, WaveSine, rate),
		)
	case CueUpgrade:
		s = beep.Seq(
			note(523.25, 70*time.Millisecond, WaveSquare, rate),
			note(659.25, 70*time.Millisecond, WaveSquare, rate),
			note(783.99, 70*time.Millisecond, WaveSquare, rate),
			note(1046.5, 140*time.Millisecond, WaveSquare, rate),
		)
	default:
		s = note(110, 180*time.Millisecond, WaveSquare, rate)
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// Render drains s into signed 16-bit little-endian stereo PCM, the layout
// ebiten's audio players consume.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, buf[i][ch])) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			return out
		}
	}
}
