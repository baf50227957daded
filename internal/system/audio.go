// internal/system/audio.go
package system

import (
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/sfx"
)

// CuePlayer plays a sound cue. sfx.Player is the real implementation.
type CuePlayer interface {
	Play(cue sfx.Cue)
}

// AudioSystem переводит игровые события в звуки.
type AudioSystem struct {
	player CuePlayer
}

func NewAudioSystem(player CuePlayer, eventDispatcher *event.Dispatcher) *AudioSystem {
	s := &AudioSystem{player: player}
	eventDispatcher.Subscribe(s, event.MineralCollected, event.VehicleUpgraded, event.UpgradeDenied)
	return s
}

func (s *AudioSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MineralCollected:
		s.player.Play(sfx.CueCollect)
	case event.VehicleUpgraded:
		s.player.Play(sfx.CueUpgrade)
	case event.UpgradeDenied:
		s.player.Play(sfx.CueDenied)
	}
}
