// internal/app/game.go
package app

import (
	"dwarf-miner/internal/component"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/entity"
	"dwarf-miner/internal/event"
	"dwarf-miner/internal/input"
	"dwarf-miner/internal/system"
	"dwarf-miner/internal/types"
	"dwarf-miner/internal/ui"
	"dwarf-miner/internal/utils"
	"dwarf-miner/pkg/geom"
	"dwarf-miner/pkg/render"

	"github.com/rs/zerolog"
)

// Options configures a new session.
type Options struct {
	Seed   int64 // 0 — сид от текущего времени
	Logger zerolog.Logger
	// Sound plays audio cues. Nil keeps the session silent.
	Sound system.CuePlayer
}

// Game holds the whole state of one session. All methods must be called from
// the single goroutine that drives frames.
type Game struct {
	ECS             *entity.ECS
	VehicleID       types.EntityID
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	MovementSystem   *system.MovementSystem
	CollectionSystem *system.CollectionSystem
	UpgradeSystem    *system.UpgradeSystem
	RenderSystem     *system.RenderSystem
	AudioSystem      *system.AudioSystem
	Spawner          *system.MineralSpawner

	Keyboard      *input.Keyboard
	Joystick      *ui.VirtualJoystick
	UpgradeButton *ui.UpgradeButton
	HUD           *ui.HUD

	// UpgradeMessage is the result of the last upgrade attempt, shown on the HUD.
	UpgradeMessage string

	pointer input.PointerTracker
	frame   uint64
	logger  zerolog.Logger
}

// NewGame initializes a new session: one vehicle in the middle of the field
// and MineralCount minerals.
func NewGame(opts Options) *Game {
	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Keyboard:        input.NewKeyboard(),
		logger:          opts.Logger,
	}

	eventDispatcher.Subscribe(&GameEventListener{logger: opts.Logger},
		event.MineralCollected,
		event.MineralSpawned,
		event.VehicleUpgraded,
		event.UpgradeDenied,
		event.JoystickEngaged,
		event.JoystickReleased,
	)
	if opts.Sound != nil {
		g.AudioSystem = system.NewAudioSystem(opts.Sound, eventDispatcher)
	}

	g.Spawner = system.NewMineralSpawner(ecs, rng, eventDispatcher, config.ScreenWidth, config.ScreenHeight)
	g.MovementSystem = system.NewMovementSystem(ecs, config.ScreenWidth, config.ScreenHeight)
	g.CollectionSystem = system.NewCollectionSystem(ecs, eventDispatcher, g.Spawner)
	g.UpgradeSystem = system.NewUpgradeSystem(ecs, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs)

	g.createVehicle()
	g.Spawner.Fill(config.MineralCount)
	g.initUI()

	g.logger.Info().Int64("seed", rng.Seed()).Int("minerals", len(ecs.Minerals)).Msg("session started")
	return g
}

// Tick advances the simulation by one frame: keyboard direction, movement,
// collection with respawn.
func (g *Game) Tick() {
	g.frame++

	// Клавиатура каждый кадр перезаписывает то, что записал джойстик.
	*g.ECS.Directions[g.VehicleID] = g.Keyboard.Direction()

	g.MovementSystem.Update()
	g.CollectionSystem.Update()
}

// Draw paints one frame. It only reads state.
func (g *Game) Draw(surface render.Surface) {
	surface.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
	g.RenderSystem.Draw(surface)
	g.Joystick.Draw(surface)
	g.UpgradeButton.Draw(surface)

	v := g.ECS.Vehicles[g.VehicleID]
	g.HUD.Draw(surface, v.Resources, v.Speed, v.Capacity, g.UpgradeMessage)
}

// KeyDown marks key as held. The upgrade key also requests an upgrade.
func (g *Game) KeyDown(key input.Key) {
	g.Keyboard.Press(key)
	if key == input.KeyUpgrade {
		g.RequestUpgrade()
	}
}

func (g *Game) KeyUp(key input.Key) {
	g.Keyboard.Release(key)
}

// PointerDown handles a new touch or mouse press. Only the first pointer is
// tracked; the upgrade button gets the first look, then the joystick.
func (g *Game) PointerDown(id input.PointerID, x, y float64) {
	if !g.pointer.Begin(id) {
		return
	}
	if g.UpgradeButton.CheckClick(x, y) {
		g.RequestUpgrade()
		return
	}
	if g.Joystick.InReach(x, y) {
		g.Joystick.Engage(x, y)
		g.EventDispatcher.Dispatch(event.Event{Type: event.JoystickEngaged})
	}
}

// PointerMove steers the joystick while the tracked pointer moves.
func (g *Game) PointerMove(id input.PointerID, x, y float64) {
	if !g.pointer.Tracks(id) {
		return
	}
	g.Joystick.Update(x, y)
}

// PointerUp releases the tracked pointer and recentres the joystick.
func (g *Game) PointerUp(id input.PointerID) {
	if !g.pointer.End(id) {
		return
	}
	wasActive := g.Joystick.Active
	g.Joystick.Reset()
	if wasActive {
		g.EventDispatcher.Dispatch(event.Event{Type: event.JoystickReleased})
	}
}

// RequestUpgrade tries to upgrade the vehicle and latches the message.
func (g *Game) RequestUpgrade() string {
	msg, _ := g.UpgradeSystem.Upgrade(g.VehicleID)
	g.UpgradeMessage = msg
	return msg
}

// --- Public Accessors ---

// Vehicle returns a copy of the vehicle stats.
func (g *Game) Vehicle() component.Vehicle {
	return *g.ECS.Vehicles[g.VehicleID]
}

// VehicleBounds returns the vehicle's current bounding box.
func (g *Game) VehicleBounds() geom.Rect {
	r, _ := g.ECS.Bounds(g.VehicleID)
	return r
}

// Direction returns the direction the vehicle will move on the next Tick
// unless the keyboard overrides it.
func (g *Game) Direction() component.Direction {
	return *g.ECS.Directions[g.VehicleID]
}

// Frame returns how many ticks have run.
func (g *Game) Frame() uint64 {
	return g.frame
}

// Close logs the end of the session.
func (g *Game) Close() {
	v := g.ECS.Vehicles[g.VehicleID]
	g.logger.Info().
		Uint64("frames", g.frame).
		Int("resources", v.Resources).
		Float64("speed", v.Speed).
		Msg("session ended")
}

// --- Private Helper Functions ---

func (g *Game) createVehicle() {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	g.ECS.Sizes[id] = &component.Size{W: config.VehicleWidth, H: config.VehicleHeight}
	g.ECS.Directions[id] = &component.Direction{}
	g.ECS.Vehicles[id] = &component.Vehicle{
		Speed:    config.VehicleStartSpeed,
		Capacity: config.VehicleStartCapacity,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color: config.VehicleColor,
		Accent: &component.Accent{
			OffsetX: config.VehicleAccentOffset,
			OffsetY: config.VehicleAccentOffset,
			W:       config.VehicleAccentWidth,
			H:       config.VehicleAccentHeight,
			Color:   config.VehicleAccentColor,
		},
	}
	g.VehicleID = id
}

func (g *Game) initUI() {
	g.Joystick = ui.NewVirtualJoystick(
		config.JoystickOffset,
		config.ScreenHeight-config.JoystickOffset,
		config.JoystickRadius,
		config.JoystickHandleRadius,
		g.ECS.Directions[g.VehicleID],
	)
	g.UpgradeButton = ui.NewUpgradeButton(geom.Rect{
		X: config.ScreenWidth - config.UpgradeButtonOffsetX,
		Y: config.ScreenHeight - config.UpgradeButtonOffsetY,
		W: config.UpgradeButtonWidth,
		H: config.UpgradeButtonHeight,
	})
	g.HUD = ui.NewHUD(config.HUDX, config.HUDY, config.HUDLineHeight)
}
