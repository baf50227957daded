package system

import (
	"dwarf-miner/internal/component"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/types"
)

func addVehicle(ecs *entity.ECS, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Sizes[id] = &component.Size{W: config.VehicleWidth, H: config.VehicleHeight}
	ecs.Directions[id] = &component.Direction{}
	ecs.Vehicles[id] = &component.Vehicle{Speed: config.VehicleStartSpeed, Capacity: config.VehicleStartCapacity}
	return id
}

func addMineral(ecs *entity.ECS, x, y float64, value int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Sizes[id] = &component.Size{W: config.GridSize, H: config.GridSize}
	ecs.Minerals[id] = &component.Mineral{Value: value}
	return id
}

// eventLog records dispatched events in order.
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) types() []event.EventType {
	var out []event.EventType
	for _, e := range l.events {
		out = append(out, e.Type)
	}
	return out
}

func newRecordingDispatcher() (*event.Dispatcher, *eventLog) {
	d := event.NewDispatcher()
	log := &eventLog{}
	d.Subscribe(log,
		event.MineralCollected,
		event.MineralSpawned,
		event.VehicleUpgraded,
		event.UpgradeDenied,
	)
	return d, log
}
