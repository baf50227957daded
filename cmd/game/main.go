// cmd/game/main.go
package main

import (
	"errors"
	"os"

	"dwarf-miner/internal/app"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/logging"
	"dwarf-miner/internal/sfx"
	"dwarf-miner/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load(".")
	if err != nil {
		l := logging.New(os.Stderr, "info")
		l.Fatal().Err(err).Msg("failed to load settings")
	}
	logger, _ := logging.WithSession(logging.New(os.Stderr, settings.LogLevel))

	opts := app.Options{Seed: settings.Seed, Logger: logger}
	if settings.Audio.Enabled {
		// Контекст звука один на процесс
		ctx := audio.NewContext(settings.Audio.SampleRate)
		opts.Sound = sfx.NewPlayer(ctx, settings.Audio.Volume, logger)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewPlayState(sm, app.NewGame(opts)))
	a := &AppGame{stateMachine: sm}

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.Window.Scale),
		int(float64(config.ScreenHeight)*settings.Window.Scale),
	)
	ebiten.SetWindowTitle(settings.Window.Title)
	err = ebiten.RunGame(a)
	sm.SetState(nil) // Exit пишет итог сессии
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}
