package entity

import (
	"sort"

	"dwarf-miner/internal/component"
	"dwarf-miner/internal/types"
	"dwarf-miner/pkg/geom"
)

// ECS holds every entity of a session as component maps keyed by EntityID.
type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Sizes       map[types.EntityID]*component.Size
	Directions  map[types.EntityID]*component.Direction
	Vehicles    map[types.EntityID]*component.Vehicle
	Minerals    map[types.EntityID]*component.Mineral
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Sizes:       make(map[types.EntityID]*component.Size),
		Directions:  make(map[types.EntityID]*component.Direction),
		Vehicles:    make(map[types.EntityID]*component.Vehicle),
		Minerals:    make(map[types.EntityID]*component.Mineral),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// DestroyEntity removes every component of id.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Sizes, id)
	delete(ecs.Directions, id)
	delete(ecs.Vehicles, id)
	delete(ecs.Minerals, id)
	delete(ecs.Renderables, id)
}

// Bounds returns the bounding box of id if it has a position and a size.
func (ecs *ECS) Bounds(id types.EntityID) (geom.Rect, bool) {
	pos, hasPos := ecs.Positions[id]
	size, hasSize := ecs.Sizes[id]
	if !hasPos || !hasSize {
		return geom.Rect{}, false
	}
	return component.Bounds(pos, size), true
}

// MineralIDs returns mineral ids in creation order so that systems iterate
// deterministically.
func (ecs *ECS) MineralIDs() []types.EntityID {
	return sortedKeys(ecs.Minerals)
}

// VehicleIDs returns vehicle ids in creation order.
func (ecs *ECS) VehicleIDs() []types.EntityID {
	return sortedKeys(ecs.Vehicles)
}

func sortedKeys[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
