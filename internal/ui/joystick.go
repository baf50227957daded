// internal/ui/joystick.go
package ui

import (
	"math"

	"dwarf-miner/internal/component"
	"dwarf-miner/internal/config"
	"dwarf-miner/pkg/geom"
	"dwarf-miner/pkg/render"
)

// VirtualJoystick — экранный аналоговый джойстик. Пока он активен, только он
// пишет направление машины; при отпускании направление сразу обнуляется.
type VirtualJoystick struct {
	X, Y             float64 // центр
	Radius           float64
	HandleRadius     float64
	HandleX, HandleY float64
	Active           bool

	target *component.Direction
}

// NewVirtualJoystick creates an idle joystick steering target.
func NewVirtualJoystick(x, y, radius, handleRadius float64, target *component.Direction) *VirtualJoystick {
	return &VirtualJoystick{
		X:            x,
		Y:            y,
		Radius:       radius,
		HandleRadius: handleRadius,
		HandleX:      x,
		HandleY:      y,
		target:       target,
	}
}

// MaxTravel is how far the handle centre may move away from the joystick centre.
func (j *VirtualJoystick) MaxTravel() float64 {
	return j.Radius - j.HandleRadius
}

// InReach reports whether a new pointer at (x, y) may grab the joystick.
func (j *VirtualJoystick) InReach(x, y float64) bool {
	return geom.Vec2{X: x - j.X, Y: y - j.Y}.Len() < j.Radius
}

// Engage activates the joystick and moves the handle to the pointer.
func (j *VirtualJoystick) Engage(x, y float64) {
	j.Active = true
	j.Update(x, y)
}

// Update follows the pointer while active. Beyond MaxTravel the handle is
// placed at MaxTravel along the pointer's angle rather than clamped per axis.
func (j *VirtualJoystick) Update(x, y float64) {
	if !j.Active {
		return
	}
	centre := geom.Vec2{X: j.X, Y: j.Y}
	d := geom.Vec2{X: x, Y: y}.Sub(centre)
	maxTravel := j.MaxTravel()
	if d.Len() > maxTravel {
		angle := math.Atan2(d.Y, d.X)
		d = geom.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}.Scale(maxTravel)
	}
	handle := centre.Add(d)
	j.HandleX, j.HandleY = handle.X, handle.Y

	dir := d.Scale(1 / maxTravel)
	j.target.X, j.target.Y = dir.X, dir.Y
}

// Reset recentres the handle, deactivates and stops the vehicle at once.
func (j *VirtualJoystick) Reset() {
	j.HandleX = j.X
	j.HandleY = j.Y
	j.Active = false
	j.target.Zero()
}

func (j *VirtualJoystick) Draw(surface render.Surface) {
	surface.FillCircle(j.X, j.Y, j.Radius, config.JoystickBaseColor)
	surface.FillCircle(j.HandleX, j.HandleY, j.HandleRadius, config.JoystickHandleColor)
}
