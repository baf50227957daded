// internal/system/spawn.go
package system

import (
	"dwarf-miner/internal/component"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/types"
	"dwarf-miner/internal/utils"
)

// MineralSpawner places minerals at random grid-sized spots of the field.
type MineralSpawner struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	fieldW, fieldH  int
	cell            int
}

func NewMineralSpawner(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, fieldW, fieldH int) *MineralSpawner {
	return &MineralSpawner{
		ecs:             ecs,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		fieldW:          fieldW,
		fieldH:          fieldH,
		cell:            config.GridSize,
	}
}

// Spawn creates one mineral. Its box always fits inside the field and its
// value is one of the 11 integers in [MineralMinValue, MineralMaxValue].
func (s *MineralSpawner) Spawn() types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{
		X: float64(s.rng.Intn(s.fieldW - s.cell)),
		Y: float64(s.rng.Intn(s.fieldH - s.cell)),
	}
	s.ecs.Sizes[id] = &component.Size{W: float64(s.cell), H: float64(s.cell)}
	s.ecs.Minerals[id] = &component.Mineral{
		Value: s.rng.IntRange(config.MineralMinValue, config.MineralMaxValue),
	}
	s.ecs.Renderables[id] = &component.Renderable{Color: config.MineralColor}

	s.eventDispatcher.Dispatch(event.Event{Type: event.MineralSpawned, Data: id})
	return id
}

// Fill spawns minerals until exactly n exist.
func (s *MineralSpawner) Fill(n int) {
	for len(s.ecs.Minerals) < n {
		s.Spawn()
	}
}
