// internal/ui/upgrade_button.go
package ui

import (
	"dwarf-miner/internal/config"
	"dwarf-miner/pkg/geom"
	"dwarf-miner/pkg/render"
)

// UpgradeButton — неподвижная кнопка улучшения. Состояния не имеет.
type UpgradeButton struct {
	Rect  geom.Rect
	Label string
}

func NewUpgradeButton(rect geom.Rect) *UpgradeButton {
	return &UpgradeButton{Rect: rect, Label: config.UpgradeButtonLabel}
}

// CheckClick reports whether (x, y) hits the button, edges included.
func (b *UpgradeButton) CheckClick(x, y float64) bool {
	return b.Rect.Contains(x, y)
}

func (b *UpgradeButton) Draw(surface render.Surface) {
	surface.FillRect(b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, config.UpgradeButtonColor)
	surface.Text(b.Label, b.Rect.X+config.UpgradeButtonTextX, b.Rect.Y+config.UpgradeButtonTextY, config.TextLightColor)
}
