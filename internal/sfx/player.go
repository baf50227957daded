package sfx

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

// Player plays pre-rendered cues through an ebiten audio context.
type Player struct {
	players map[Cue]*audio.Player
	logger  zerolog.Logger
}

// NewPlayer renders every cue once up front. Only one audio context may exist
// per process, so the caller owns ctx.
func NewPlayer(ctx *audio.Context, volume float64, logger zerolog.Logger) *Player {
	rate := beep.SampleRate(ctx.SampleRate())
	p := &Player{players: make(map[Cue]*audio.Player), logger: logger}
	for _, cue := range Cues {
		p.players[cue] = ctx.NewPlayerFromBytes(Render(Synthesize(cue, rate, volume)))
	}
	return p
}

// Play restarts the cue from the beginning.
func (p *Player) Play(cue Cue) {
	player, ok := p.players[cue]
	if !ok {
		return
	}
	if err := player.Rewind(); err != nil {
		p.logger.Error().Err(err).Stringer("cue", cue).Msg("failed to rewind sound")
		return
	}
	player.Play()
}
