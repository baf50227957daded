package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SettingsFileName is looked up in the config directory without extension.
const SettingsFileName = "dwarf-miner"

// Settings holds the runtime options that can be changed without a rebuild.
type Settings struct {
	Seed     int64  `mapstructure:"seed"`
	LogLevel string `mapstructure:"logLevel"`

	Audio    AudioSettings    `mapstructure:"audio"`
	Window   WindowSettings   `mapstructure:"window"`
	Terminal TerminalSettings `mapstructure:"terminal"`
}

type AudioSettings struct {
	Enabled    bool    `mapstructure:"enabled"`
	Volume     float64 `mapstructure:"volume"`
	SampleRate int     `mapstructure:"sampleRate"`
}

type WindowSettings struct {
	Title string  `mapstructure:"title"`
	Scale float64 `mapstructure:"scale"`
}

// TerminalSettings configures the tcell frontend. Terminals report key presses
// but not releases, so a key counts as held for KeyHoldFrames ticks after its
// last press.
type TerminalSettings struct {
	FPS           int `mapstructure:"fps"`
	KeyHoldFrames int `mapstructure:"keyHoldFrames"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 0)
	v.SetDefault("logLevel", "info")

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)
	v.SetDefault("audio.sampleRate", 44100)

	v.SetDefault("window.title", "Dwarf Miner")
	v.SetDefault("window.scale", 1.0)

	v.SetDefault("terminal.fps", 30)
	v.SetDefault("terminal.keyHoldFrames", 6)
}

// Load reads dwarf-miner.json from configDir on top of the defaults.
// A missing file is fine; a malformed one is reported. DWARF_* environment
// variables (DWARF_LOGLEVEL, DWARF_AUDIO_ENABLED, ...) override both.
func Load(configDir string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(SettingsFileName)
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("DWARF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume must be within [0, 1], got %v", s.Audio.Volume)
	}
	if s.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", s.Audio.SampleRate)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("window.scale must be positive, got %v", s.Window.Scale)
	}
	if s.Terminal.FPS <= 0 {
		return fmt.Errorf("terminal.fps must be positive, got %d", s.Terminal.FPS)
	}
	if s.Terminal.KeyHoldFrames < 1 {
		return fmt.Errorf("terminal.keyHoldFrames must be at least 1, got %d", s.Terminal.KeyHoldFrames)
	}
	return nil
}
