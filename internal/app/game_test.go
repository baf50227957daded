package app

import (
	"math/rand"
	"testing"

	"dwarf-miner/internal/component"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/input"
	"dwarf-miner/internal/sfx"
	"dwarf-miner/internal/types"
	"dwarf-miner/pkg/render"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	joystickX = config.JoystickOffset
	joystickY = config.ScreenHeight - config.JoystickOffset
	buttonX   = config.ScreenWidth - config.UpgradeButtonOffsetX + config.UpgradeButtonWidth/2
	buttonY   = config.ScreenHeight - config.UpgradeButtonOffsetY + config.UpgradeButtonHeight/2
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{Seed: 42, Logger: zerolog.Nop()})
}

// placeVehicle moves the vehicle and clears the field so stray minerals do
// not touch it.
func placeVehicle(g *Game, x, y float64) {
	for _, id := range g.ECS.MineralIDs() {
		g.ECS.DestroyEntity(id)
	}
	pos := g.ECS.Positions[g.VehicleID]
	pos.X, pos.Y = x, y
}

func addMineral(g *Game, x, y float64, value int) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: x, Y: y}
	g.ECS.Sizes[id] = &component.Size{W: config.GridSize, H: config.GridSize}
	g.ECS.Minerals[id] = &component.Mineral{Value: value}
	g.ECS.Renderables[id] = &component.Renderable{Color: config.MineralColor}
	return id
}

type cueLog struct {
	cues []sfx.Cue
}

func (l *cueLog) Play(cue sfx.Cue) {
	l.cues = append(l.cues, cue)
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	v := g.Vehicle()
	assert.Equal(t, 0, v.Resources)
	assert.InDelta(t, config.VehicleStartSpeed, v.Speed, 1e-9)
	assert.Equal(t, config.VehicleStartCapacity, v.Capacity)
	assert.Equal(t, 400.0, g.VehicleBounds().X)
	assert.Equal(t, 300.0, g.VehicleBounds().Y)
	assert.Equal(t, component.Direction{}, g.Direction())

	require.Len(t, g.ECS.Minerals, config.MineralCount)
	for _, id := range g.ECS.MineralIDs() {
		b, ok := g.ECS.Bounds(id)
		require.True(t, ok)
		assert.True(t, b.Inside(config.ScreenWidth, config.ScreenHeight))
		value := g.ECS.Minerals[id].Value
		assert.GreaterOrEqual(t, value, config.MineralMinValue)
		assert.LessOrEqual(t, value, config.MineralMaxValue)
	}

	assert.False(t, g.Joystick.Active)
	assert.Empty(t, g.UpgradeMessage)
	assert.Zero(t, g.Frame())
}

func TestNewGameSameSeedSameField(t *testing.T) {
	a := newTestGame(t)
	b := newTestGame(t)

	for _, id := range a.ECS.MineralIDs() {
		assert.Equal(t, *a.ECS.Positions[id], *b.ECS.Positions[id])
		assert.Equal(t, *a.ECS.Minerals[id], *b.ECS.Minerals[id])
	}
}

func TestTickKeyboardMovement(t *testing.T) {
	tests := []struct {
		name  string
		start [2]float64
		keys  []input.Key
		want  [2]float64
	}{
		{"idle", [2]float64{400, 300}, nil, [2]float64{400, 300}},
		{"right", [2]float64{400, 300}, []input.Key{input.KeyRight}, [2]float64{405, 300}},
		{"diagonal", [2]float64{400, 300}, []input.Key{input.KeyLeft, input.KeyUp}, [2]float64{395, 295}},
		{"opposite keys cancel", [2]float64{400, 300}, []input.Key{input.KeyLeft, input.KeyRight}, [2]float64{400, 300}},
		{"left wall", [2]float64{0, 0}, []input.Key{input.KeyLeft}, [2]float64{0, 0}},
		{"slides along left wall", [2]float64{0, 100}, []input.Key{input.KeyLeft, input.KeyDown}, [2]float64{0, 105}},
		{"bottom right corner", [2]float64{760, 560}, []input.Key{input.KeyRight, input.KeyDown}, [2]float64{760, 560}},
		{"would cross right wall", [2]float64{757, 300}, []input.Key{input.KeyRight}, [2]float64{757, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			placeVehicle(g, tt.start[0], tt.start[1])
			for _, k := range tt.keys {
				g.KeyDown(k)
			}

			g.Tick()

			b := g.VehicleBounds()
			assert.Equal(t, tt.want[0], b.X)
			assert.Equal(t, tt.want[1], b.Y)
		})
	}
}

func TestKeyUpStopsVehicle(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 400, 300)

	g.KeyDown(input.KeyDown)
	g.Tick()
	g.KeyUp(input.KeyDown)
	g.Tick()

	assert.Equal(t, 305.0, g.VehicleBounds().Y)
	assert.Equal(t, uint64(2), g.Frame())
}

func TestInvariantsHoldOverManyFrames(t *testing.T) {
	g := newTestGame(t)
	r := rand.New(rand.NewSource(7))
	keys := []input.Key{input.KeyLeft, input.KeyRight, input.KeyUp, input.KeyDown}

	for frame := 0; frame < 5000; frame++ {
		if r.Intn(10) == 0 {
			k := keys[r.Intn(len(keys))]
			if g.Keyboard.Held(k) {
				g.KeyUp(k)
			} else {
				g.KeyDown(k)
			}
		}
		if frame%500 == 0 {
			g.ECS.Vehicles[g.VehicleID].Resources += 50
			g.RequestUpgrade()
		}

		g.Tick()

		require.True(t, g.VehicleBounds().Inside(config.ScreenWidth, config.ScreenHeight), "frame %d", frame)
		require.Len(t, g.ECS.Minerals, config.MineralCount, "frame %d", frame)
		require.GreaterOrEqual(t, g.Vehicle().Resources, 0)
	}
}

func TestCollectOnOverlap(t *testing.T) {
	tests := []struct {
		name          string
		mineral       [2]float64
		wantCollected bool
	}{
		{"overlapping corner", [2]float64{39, 39}, true},
		{"touching corner", [2]float64{40, 40}, false},
		{"touching edge", [2]float64{40, 10}, false},
		{"inside", [2]float64{10, 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			placeVehicle(g, 0, 0)
			id := addMineral(g, tt.mineral[0], tt.mineral[1], 7)

			g.Tick()

			_, stillThere := g.ECS.Minerals[id]
			assert.Equal(t, !tt.wantCollected, stillThere)
			assert.Len(t, g.ECS.Minerals, 1, "a collected mineral is replaced")
			if tt.wantCollected {
				assert.Equal(t, 7, g.Vehicle().Resources)
			} else {
				assert.Equal(t, 0, g.Vehicle().Resources)
			}
		})
	}
}

func TestCollectSeveralInOneFrame(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 100, 100)
	addMineral(g, 100, 100, 5)
	addMineral(g, 120, 120, 15)
	far := addMineral(g, 500, 500, 9)

	g.Tick()

	assert.Equal(t, 20, g.Vehicle().Resources)
	assert.Len(t, g.ECS.Minerals, 3)
	assert.Contains(t, g.ECS.Minerals, far)
}

func TestRequestUpgrade(t *testing.T) {
	tests := []struct {
		name          string
		resources     int
		wantMessage   string
		wantResources int
		wantSpeed     float64
		wantCapacity  int
	}{
		{"exactly enough", 50, config.MessageUpgraded, 0, 6, 15},
		{"one short", 49, config.MessageNotEnough, 49, 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ECS.Vehicles[g.VehicleID].Resources = tt.resources

			assert.Equal(t, tt.wantMessage, g.RequestUpgrade())
			assert.Equal(t, tt.wantMessage, g.UpgradeMessage)

			v := g.Vehicle()
			assert.Equal(t, tt.wantResources, v.Resources)
			assert.InDelta(t, tt.wantSpeed, v.Speed, 1e-9)
			assert.Equal(t, tt.wantCapacity, v.Capacity)
		})
	}
}

func TestUpgradeSpeedAppliesToMovement(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 400, 300)
	g.ECS.Vehicles[g.VehicleID].Resources = 100
	g.RequestUpgrade()
	g.RequestUpgrade()

	g.KeyDown(input.KeyRight)
	g.Tick()

	assert.Equal(t, 407.0, g.VehicleBounds().X)
}

func TestUpgradeKey(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Vehicles[g.VehicleID].Resources = 60

	g.KeyDown(input.KeyUpgrade)
	assert.Equal(t, config.MessageUpgraded, g.UpgradeMessage)
	assert.Equal(t, 10, g.Vehicle().Resources)

	g.KeyUp(input.KeyUpgrade)
	g.KeyDown(input.KeyUpgrade)
	assert.Equal(t, config.MessageNotEnough, g.UpgradeMessage)
	assert.Equal(t, 10, g.Vehicle().Resources)
}

func TestUpgradeButtonTap(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Vehicles[g.VehicleID].Resources = 50

	g.PointerDown(input.MousePointer, buttonX, buttonY)

	assert.Equal(t, config.MessageUpgraded, g.UpgradeMessage)
	assert.Equal(t, 0, g.Vehicle().Resources)
	assert.False(t, g.Joystick.Active)

	g.PointerUp(input.MousePointer)
	g.PointerDown(input.MousePointer, buttonX, buttonY)
	assert.Equal(t, config.MessageNotEnough, g.UpgradeMessage)
}

func TestJoystickWritesDirection(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 400, 300)

	// touch id 0 is a real pointer
	g.PointerDown(0, joystickX+10, joystickY)
	require.True(t, g.Joystick.Active)
	assert.InDelta(t, 10.0/30.0, g.Direction().X, 1e-9)

	g.PointerMove(0, joystickX+200, joystickY)
	assert.InDelta(t, joystickX+30, g.Joystick.HandleX, 1e-9)
	assert.InDelta(t, joystickY, g.Joystick.HandleY, 1e-9)
	assert.InDelta(t, 1.0, g.Direction().X, 1e-9)
	assert.InDelta(t, 0.0, g.Direction().Y, 1e-9)

	g.PointerUp(0)
	assert.False(t, g.Joystick.Active)
	assert.Equal(t, component.Direction{}, g.Direction())
}

func TestKeyboardReadOverwritesJoystick(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 400, 300)

	g.PointerDown(0, joystickX+30, joystickY)
	require.True(t, g.Joystick.Active)
	require.InDelta(t, 1.0, g.Direction().X, 1e-9)

	// без клавиш кадр обнуляет направление до движения
	g.Tick()
	assert.Equal(t, component.Direction{}, g.Direction())
	assert.Equal(t, 400.0, g.VehicleBounds().X)
	assert.Equal(t, 300.0, g.VehicleBounds().Y)

	g.PointerMove(0, joystickX+100, joystickY)
	assert.InDelta(t, 1.0, g.Direction().X, 1e-9)
	g.Tick()
	assert.Equal(t, 400.0, g.VehicleBounds().X)
}

func TestKeyboardWinsOverJoystick(t *testing.T) {
	g := newTestGame(t)
	placeVehicle(g, 400, 300)

	g.PointerDown(0, joystickX+200, joystickY)
	assert.False(t, g.Joystick.Active, "out of reach")
	g.PointerUp(0)

	g.PointerDown(0, joystickX+20, joystickY)
	g.PointerMove(0, joystickX+100, joystickY)
	require.True(t, g.Joystick.Active)
	g.KeyDown(input.KeyUp)

	g.Tick()

	assert.Equal(t, component.Direction{Y: -1}, g.Direction())
	assert.Equal(t, 400.0, g.VehicleBounds().X)
	assert.Equal(t, 295.0, g.VehicleBounds().Y)
}

func TestSecondPointerIgnored(t *testing.T) {
	g := newTestGame(t)
	g.ECS.Vehicles[g.VehicleID].Resources = 50

	g.PointerDown(1, joystickX, joystickY)
	require.True(t, g.Joystick.Active)

	g.PointerDown(2, buttonX, buttonY)
	assert.Empty(t, g.UpgradeMessage)
	assert.Equal(t, 50, g.Vehicle().Resources)

	g.PointerMove(2, joystickX+30, joystickY)
	assert.Equal(t, float64(joystickX), g.Joystick.HandleX)

	g.PointerUp(2)
	assert.True(t, g.Joystick.Active)

	g.PointerUp(1)
	assert.False(t, g.Joystick.Active)
}

func TestPointerOutsideControlsIsStillTracked(t *testing.T) {
	g := newTestGame(t)

	g.PointerDown(5, 400, 100)
	g.PointerDown(6, joystickX, joystickY)
	assert.False(t, g.Joystick.Active)

	g.PointerUp(5)
	g.PointerDown(6, joystickX, joystickY)
	assert.True(t, g.Joystick.Active)
}

func TestDrawOrder(t *testing.T) {
	g := newTestGame(t)
	rec := &render.Recorder{}

	g.Draw(rec)

	require.Len(t, rec.Ops, 1+2+config.MineralCount+2+2+3)

	bg := rec.Ops[0]
	assert.Equal(t, render.OpRect, bg.Kind)
	assert.Equal(t, [4]float64{0, 0, config.ScreenWidth, config.ScreenHeight}, [4]float64{bg.X, bg.Y, bg.W, bg.H})
	assert.Equal(t, config.BackgroundColor, bg.Color)

	body, accent := rec.Ops[1], rec.Ops[2]
	assert.Equal(t, config.VehicleColor, body.Color)
	assert.Equal(t, [4]float64{400, 300, 40, 40}, [4]float64{body.X, body.Y, body.W, body.H})
	assert.Equal(t, config.VehicleAccentColor, accent.Color)
	assert.Equal(t, [4]float64{410, 310, 20, 10}, [4]float64{accent.X, accent.Y, accent.W, accent.H})

	i := 3
	for ; i < 3+config.MineralCount; i++ {
		assert.Equal(t, config.MineralColor, rec.Ops[i].Color)
	}
	assert.Equal(t, render.OpCircle, rec.Ops[i].Kind)
	assert.Equal(t, config.JoystickBaseColor, rec.Ops[i].Color)
	assert.Equal(t, render.OpCircle, rec.Ops[i+1].Kind)
	assert.Equal(t, config.JoystickHandleColor, rec.Ops[i+1].Color)
	assert.Equal(t, render.OpRect, rec.Ops[i+2].Kind)
	assert.Equal(t, config.UpgradeButtonColor, rec.Ops[i+2].Color)

	assert.Equal(t, []string{config.UpgradeButtonLabel, "Resources: 0", "Speed: 5", "Capacity: 10"}, rec.Texts())
}

func TestDrawShowsUpgradeMessage(t *testing.T) {
	g := newTestGame(t)
	g.RequestUpgrade()
	rec := &render.Recorder{}

	g.Draw(rec)

	texts := rec.Texts()
	require.NotEmpty(t, texts)
	assert.Equal(t, config.MessageNotEnough, texts[len(texts)-1])
}

func TestSoundCues(t *testing.T) {
	cues := &cueLog{}
	g := NewGame(Options{Seed: 3, Logger: zerolog.Nop(), Sound: cues})
	placeVehicle(g, 0, 0)
	addMineral(g, 0, 0, 50)

	g.Tick()
	g.RequestUpgrade()
	g.RequestUpgrade()

	assert.Equal(t, []sfx.Cue{sfx.CueCollect, sfx.CueUpgrade, sfx.CueDenied}, cues.cues)
}
