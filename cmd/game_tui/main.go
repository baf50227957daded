// cmd/game_tui/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dwarf-miner/internal/app"
	"dwarf-miner/internal/config"
	"dwarf-miner/internal/logging"
	"dwarf-miner/internal/sfx"
	"dwarf-miner/internal/tui"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
)

// Лог пишется в файл: терминал занят игрой.
const logFileName = "dwarf-miner-tui.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dwarf-miner: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load(".")
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger, _ := logging.WithSession(logging.New(logFile, settings.LogLevel))

	opts := app.Options{Seed: settings.Seed, Logger: logger}
	if settings.Audio.Enabled {
		player, err := sfx.NewSpeakerPlayer(beep.SampleRate(settings.Audio.SampleRate), settings.Audio.Volume)
		if err != nil {
			// без звука играть можно
			logger.Error().Err(err).Msg("audio disabled")
		} else {
			defer player.Close()
			opts.Sound = player
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := app.NewGame(opts)
	defer game.Close()

	err = tui.NewFrontend(screen, game, settings.Terminal, logger).Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
