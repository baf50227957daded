// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	GridSize     = 20 // размер клетки руды
	TPS          = 60 // кадров логики в секунду

	VehicleWidth             = 40
	VehicleHeight            = 40
	VehicleStartSpeed        = 5.0 // единиц за кадр
	VehicleStartCapacity     = 10
	VehicleAccentOffset      = 10
	VehicleAccentWidth       = 20
	VehicleAccentHeight      = 10
	MineralCount             = 5
	MineralMinValue          = 5
	MineralMaxValue          = 15
	UpgradeCost              = 50
	UpgradeSpeedIncrement    = 1.0
	UpgradeCapacityIncrement = 5

	JoystickOffset       = 100 // от левого и нижнего края
	JoystickRadius       = 50.0
	JoystickHandleRadius = 20.0

	UpgradeButtonOffsetX = 120
	UpgradeButtonOffsetY = 60
	UpgradeButtonWidth   = 100
	UpgradeButtonHeight  = 40
	UpgradeButtonTextX   = 10
	UpgradeButtonTextY   = 28
	UpgradeButtonLabel   = "Upgrade"

	HUDX          = 10
	HUDY          = 20
	HUDLineHeight = 30
)

const (
	MessageUpgraded  = "Vehicle Upgraded!"
	MessageNotEnough = "Not Enough Resources!"
)

var (
	BackgroundColor     = color.RGBA{0x1C, 0x25, 0x26, 255}
	VehicleColor        = color.RGBA{0x00, 0xFF, 0x00, 255}
	VehicleAccentColor  = color.RGBA{0x8B, 0x45, 0x13, 255}
	MineralColor        = color.RGBA{0xFF, 0xD7, 0x00, 255}
	UpgradeButtonColor  = color.RGBA{0xFF, 0x45, 0x00, 255}
	TextLightColor      = color.RGBA{255, 255, 255, 255}
	// Цвета джойстика в premultiplied-виде: белый с альфой 0.2 и 0.5
	JoystickBaseColor   = color.RGBA{51, 51, 51, 51}
	JoystickHandleColor = color.RGBA{128, 128, 128, 128}
)
