package sfx

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SpeakerPlayer plays cues through beep's speaker. It is used where no ebiten
// loop runs, e.g. in the terminal frontend.
type SpeakerPlayer struct {
	buffers map[Cue]*beep.Buffer
}

// NewSpeakerPlayer opens the audio device and pre-renders every cue.
// Close must be called when done.
func NewSpeakerPlayer(rate beep.SampleRate, volume float64) (*SpeakerPlayer, error) {
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	p := &SpeakerPlayer{buffers: make(map[Cue]*beep.Buffer)}
	for _, cue := range Cues {
		p.buffers[cue] = Buffer(cue, rate, volume)
	}
	return p, nil
}

// Buffer renders a cue into memory so it can be replayed.
func Buffer(cue Cue, rate beep.SampleRate, volume float64) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(Synthesize(cue, rate, volume))
	return buf
}

func (p *SpeakerPlayer) Play(cue Cue) {
	buf, ok := p.buffers[cue]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

func (p *SpeakerPlayer) Close() {
	speaker.Close()
}
