package config

import (
	_ "embed"
)

//go:embed defaults/spacetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Preset: "classic",
		},
		Countdown: CountdownConfig{
			Ticks:      4,
			IntervalMS: 500,
		},
		Scores: ScoresConfig{
			Top:           5,
			MaxNameLength: 20,
		},
		Audio: AudioConfig{
			Sound:       true,
			Volume:      0.3,
			Music:       true,
			MusicVolume: 0.25,
		},
		Display: DisplayConfig{
			LandingShadow: true,
			Statistics:    true,
			Starfield:     true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
