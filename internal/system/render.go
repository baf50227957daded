// internal/system/render.go
package system

import (
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/types"
	"dwarf-miner/pkg/render"
)

// RenderSystem рисует сущности: сначала машины, потом руду.
// Только читает состояние.
type RenderSystem struct {
	ecs *entity.ECS
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	for _, id := range s.ecs.VehicleIDs() {
		s.drawEntity(surface, id)
	}
	for _, id := range s.ecs.MineralIDs() {
		s.drawEntity(surface, id)
	}
}

func (s *RenderSystem) drawEntity(surface render.Surface, id types.EntityID) {
	pos, hasPos := s.ecs.Positions[id]
	size, hasSize := s.ecs.Sizes[id]
	r, hasRender := s.ecs.Renderables[id]
	if !hasPos || !hasSize || !hasRender {
		return
	}
	surface.FillRect(pos.X, pos.Y, size.W, size.H, r.Color)
	if a := r.Accent; a != nil {
		surface.FillRect(pos.X+a.OffsetX, pos.Y+a.OffsetY, a.W, a.H, a.Color)
	}
}
