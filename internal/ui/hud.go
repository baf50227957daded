// internal/ui/hud.go
package ui

import (
	"fmt"

	"dwarf-miner/internal/config"
	"dwarf-miner/pkg/render"
)

// HUD draws the status lines in the top-left corner.
type HUD struct {
	X, Y       float64
	LineHeight float64
}

func NewHUD(x, y, lineHeight float64) *HUD {
	return &HUD{X: x, Y: y, LineHeight: lineHeight}
}

// Draw renders resources, speed, capacity and the last upgrade message.
func (h *HUD) Draw(surface render.Surface, resources int, speed float64, capacity int, message string) {
	lines := []string{
		fmt.Sprintf("Resources: %d", resources),
		fmt.Sprintf("Speed: %g", speed),
		fmt.Sprintf("Capacity: %d", capacity),
		message,
	}
	for i, line := range lines {
		if line == "" {
			continue
		}
		surface.Text(line, h.X, h.Y+float64(i)*h.LineHeight, config.TextLightColor)
	}
}
