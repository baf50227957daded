// internal/state/play_state.go
package state

import (
	"dwarf-miner/internal/app"
	"dwarf-miner/internal/input"
	"dwarf-miner/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Убеждаемся, что PlayState соответствует интерфейсу State
var _ State = (*PlayState)(nil)

// PlayState — единственное игровое состояние: опрашивает ввод ebiten,
// передаёт его в сессию и крутит один кадр симуляции за Update.
type PlayState struct {
	sm      *StateMachine
	game    *app.Game
	surface *render.EbitenSurface

	keys    []ebiten.Key
	touches []ebiten.TouchID
}

func NewPlayState(sm *StateMachine, game *app.Game) *PlayState {
	return &PlayState{
		sm:      sm,
		game:    game,
		surface: render.NewEbitenSurface(),
	}
}

func (s *PlayState) Enter() {
	// Ничего не делаем при входе
}

func (s *PlayState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s.pollKeys()
	s.pollMouse()
	s.pollTouches()
	s.game.Tick()
	return nil
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	s.surface.Target(screen)
	s.game.Draw(s.surface)
}

func (s *PlayState) Exit() {
	s.game.Close()
}

func (s *PlayState) pollKeys() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := KeyFromEbiten(k); ok {
			s.game.KeyDown(key)
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := KeyFromEbiten(k); ok {
			s.game.KeyUp(key)
		}
	}
}

// pollMouse ведёт мышь как ещё один указатель. Пока кнопка зажата, позиция
// передаётся каждый кадр, даже без движения.
func (s *PlayState) pollMouse() {
	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.game.PointerDown(input.MousePointer, x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.game.PointerMove(input.MousePointer, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.game.PointerUp(input.MousePointer)
	}
}

func (s *PlayState) pollTouches() {
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		s.game.PointerDown(input.PointerID(id), float64(x), float64(y))
	}
	s.touches = ebiten.AppendTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		s.game.PointerMove(input.PointerID(id), float64(x), float64(y))
	}
	s.touches = inpututil.AppendJustReleasedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		s.game.PointerUp(input.PointerID(id))
	}
}

// KeyFromEbiten maps the keys the game listens to. Everything else is ignored.
func KeyFromEbiten(k ebiten.Key) (input.Key, bool) {
	switch k {
	case ebiten.KeyArrowLeft:
		return input.KeyLeft, true
	case ebiten.KeyArrowRight:
		return input.KeyRight, true
	case ebiten.KeyArrowUp:
		return input.KeyUp, true
	case ebiten.KeyArrowDown:
		return input.KeyDown, true
	case ebiten.KeyU:
		return input.KeyUpgrade, true
	default:
		return 0, false
	}
}
