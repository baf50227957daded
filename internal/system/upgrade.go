// internal/system/upgrade.go
package system

import (
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/types"
)

// UpgradeSystem отвечает за трату ресурсов на улучшение машины.
// Это единственное место, где ресурсы уменьшаются, а скорость и вместимость растут.
type UpgradeSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewUpgradeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *UpgradeSystem {
	return &UpgradeSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Upgrade spends UpgradeCost resources for +1 speed and +5 capacity. With
// fewer resources nothing changes. The returned message is meant for the HUD.
func (s *UpgradeSystem) Upgrade(vehicleID types.EntityID) (string, bool) {
	vehicle, ok := s.ecs.Vehicles[vehicleID]
	if !ok {
		return config.MessageNotEnough, false
	}

	if vehicle.Resources < config.UpgradeCost {
		s.dispatch(event.UpgradeDenied, vehicleID)
		return config.MessageNotEnough, false
	}

	vehicle.Resources -= config.UpgradeCost
	vehicle.Speed += config.UpgradeSpeedIncrement
	vehicle.Capacity += config.UpgradeCapacityIncrement
	s.dispatch(event.VehicleUpgraded, vehicleID)
	return config.MessageUpgraded, true
}

func (s *UpgradeSystem) dispatch(t event.EventType, vehicleID types.EntityID) {
	v := s.ecs.Vehicles[vehicleID]
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.UpgradeData{
			VehicleID: vehicleID,
			Resources: v.Resources,
			Speed:     v.Speed,
			Capacity:  v.Capacity,
		},
	})
}
