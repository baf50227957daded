// internal/app/events.go
package app

import (
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/types"

	"github.com/rs/zerolog"
)

// GameEventListener пишет игровые события в лог.
type GameEventListener struct {
	logger zerolog.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.MineralCollectedData:
		l.logger.Debug().
			Uint64("mineral", uint64(data.MineralID)).
			Int("value", data.Value).
			Int("resources", data.Resources).
			Msg("mineral collected")
	case event.UpgradeData:
		l.logger.Debug().
			Str("event", string(e.Type)).
			Int("resources", data.Resources).
			Float64("speed", data.Speed).
			Int("capacity", data.Capacity).
			Msg("upgrade attempt")
	case types.EntityID:
		l.logger.Debug().Uint64("mineral", uint64(data)).Msg("mineral spawned")
	default:
		l.logger.Debug().Str("event", string(e.Type)).Msg("input")
	}
}
