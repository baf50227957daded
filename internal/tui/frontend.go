// internal/tui/frontend.go
package tui

import (
	"context"
	"time"

	"dwarf-miner/internal/app"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/input"
	"dwarf-miner/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Frontend runs a game session on a terminal. The mouse acts as the pointer:
// left button down/drag/up map to pointer down/move/up.
type Frontend struct {
	screen  tcell.Screen
	surface *render.CellSurface
	game    *app.Game
	holds   *KeyHolds
	fps     int
	logger  zerolog.Logger

	mouseDown bool
}

// NewFrontend takes an initialized screen. The caller still owns it and must
// call Fini.
func NewFrontend(screen tcell.Screen, game *app.Game, settings config.TerminalSettings, logger zerolog.Logger) *Frontend {
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.HideCursor()

	fps := settings.FPS
	if fps < 1 {
		fps = config.TPS
	}
	return &Frontend{
		screen:  screen,
		surface: render.NewCellSurface(screen, config.ScreenWidth, config.ScreenHeight),
		game:    game,
		holds:   NewKeyHolds(settings.KeyHoldFrames),
		fps:     fps,
		logger:  logger,
	}
}

// Run processes terminal events and ticks frames until the player quits or
// ctx is cancelled. Everything happens on the calling goroutine.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go f.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(f.fps))
	defer ticker.Stop()

	cols, rows := f.surface.Grid()
	f.logger.Info().Int("cols", cols).Int("rows", rows).Int("fps", f.fps).Msg("terminal frontend started")
	f.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			f.Step()
		}
	}
}

// Step runs one frame: the session ticks, expired keys are released and the
// screen is redrawn.
func (f *Frontend) Step() {
	f.game.Tick()
	for _, k := range f.holds.Expire() {
		f.game.KeyUp(k)
	}
	f.Draw()
}

func (f *Frontend) Draw() {
	f.game.Draw(f.surface)
	f.screen.Show()
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleKey(ev)
	case *tcell.EventMouse:
		f.handleMouse(ev)
	case *tcell.EventResize:
		f.surface.Resize()
		f.screen.Sync()
		f.Draw()
	}
	return true
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		f.press(input.KeyLeft)
	case tcell.KeyRight:
		f.press(input.KeyRight)
	case tcell.KeyUp:
		f.press(input.KeyUp)
	case tcell.KeyDown:
		f.press(input.KeyDown)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'u', 'U':
			// отпускание не приходит, поэтому сразу отпускаем сами
			f.game.KeyDown(input.KeyUpgrade)
			f.game.KeyUp(input.KeyUpgrade)
		}
	}
	return true
}

func (f *Frontend) press(k input.Key) {
	if f.holds.Press(k) {
		f.game.KeyDown(k)
	}
}

func (f *Frontend) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	x, y := f.surface.ToField(col, row)

	if ev.Buttons()&tcell.Button1 != 0 {
		if !f.mouseDown {
			f.mouseDown = true
			f.game.PointerDown(input.MousePointer, x, y)
			return
		}
		f.game.PointerMove(input.MousePointer, x, y)
		return
	}
	if f.mouseDown {
		f.mouseDown = false
		f.game.PointerUp(input.MousePointer)
	}
}
