// internal/system/collection.go
package system

import (
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/types"
)

// CollectionSystem собирает руду, которой касается машина, и сразу
// заменяет её новой, так что число минералов на поле не меняется.
type CollectionSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	spawner         *MineralSpawner
}

func NewCollectionSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, spawner *MineralSpawner) *CollectionSystem {
	return &CollectionSystem{ecs: ecs, eventDispatcher: eventDispatcher, spawner: spawner}
}

// Collect adds the mineral's value to the vehicle when their boxes overlap
// strictly. It does not remove the mineral.
func (s *CollectionSystem) Collect(vehicleID, mineralID types.EntityID) bool {
	vehicle, isVehicle := s.ecs.Vehicles[vehicleID]
	mineral, isMineral := s.ecs.Minerals[mineralID]
	if !isVehicle || !isMineral {
		return false
	}
	vehicleRect, ok := s.ecs.Bounds(vehicleID)
	if !ok {
		return false
	}
	mineralRect, ok := s.ecs.Bounds(mineralID)
	if !ok {
		return false
	}
	if !vehicleRect.Overlaps(mineralRect) {
		return false
	}
	vehicle.Resources += mineral.Value
	return true
}

// Update tests every mineral against every vehicle and replaces the collected
// ones. It returns how many minerals were collected this frame.
func (s *CollectionSystem) Update() int {
	collected := 0
	for _, vehicleID := range s.ecs.VehicleIDs() {
		for _, mineralID := range s.ecs.MineralIDs() {
			value := s.ecs.Minerals[mineralID].Value
			if !s.Collect(vehicleID, mineralID) {
				continue
			}
			collected++
			s.ecs.DestroyEntity(mineralID)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.MineralCollected,
				Data: event.MineralCollectedData{
					VehicleID: vehicleID,
					MineralID: mineralID,
					Value:     value,
					Resources: s.ecs.Vehicles[vehicleID].Resources,
				},
			})
			s.spawner.Spawn()
		}
	}
	return collected
}
