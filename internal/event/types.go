// internal/event/types.go
package event

import "dwarf-miner/internal/types"

const (
	MineralCollected EventType = "MineralCollected" // Data: MineralCollectedData
	MineralSpawned   EventType = "MineralSpawned"   // Data: types.EntityID
	VehicleUpgraded  EventType = "VehicleUpgraded"  // Data: UpgradeData
	UpgradeDenied    EventType = "UpgradeDenied"    // Data: UpgradeData
	JoystickEngaged  EventType = "JoystickEngaged"
	JoystickReleased EventType = "JoystickReleased"
)

type MineralCollectedData struct {
	VehicleID types.EntityID
	MineralID types.EntityID
	Value     int
	Resources int // ресурсы после сбора
}

type UpgradeData struct {
	VehicleID types.EntityID
	Resources int
	Speed     float64
	Capacity  int
}
