// internal/system/movement.go
package system

import (
	"dwarf-miner/internal/component"
	"dwarf-miner/internal/entity"
)

// MovementSystem продвигает машины по их направлению, не выпуская за поле.
type MovementSystem struct {
	ecs            *entity.ECS
	fieldW, fieldH float64
}

func NewMovementSystem(ecs *entity.ECS, fieldW, fieldH float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, fieldW: fieldW, fieldH: fieldH}
}

func (s *MovementSystem) Update() {
	for _, id := range s.ecs.VehicleIDs() {
		pos, hasPos := s.ecs.Positions[id]
		size, hasSize := s.ecs.Sizes[id]
		dir, hasDir := s.ecs.Directions[id]
		if !hasPos || !hasSize || !hasDir {
			continue
		}
		Move(pos, size, dir, s.ecs.Vehicles[id].Speed, s.fieldW, s.fieldH)
	}
}

// Move shifts pos by dir*speed. Each axis is accepted on its own, and only if
// the box stays inside [0,fieldW]×[0,fieldH] on that axis, so a diagonal push
// into a wall still slides along it.
func Move(pos *component.Position, size *component.Size, dir *component.Direction, speed, fieldW, fieldH float64) {
	newX := pos.X + dir.X*speed
	newY := pos.Y + dir.Y*speed
	if newX >= 0 && newX <= fieldW-size.W {
		pos.X = newX
	}
	if newY >= 0 && newY <= fieldH-size.H {
		pos.Y = newY
	}
}
