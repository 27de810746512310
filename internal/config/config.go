// Package config provides YAML-based configuration loading for spacetris.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/spacetris/internal/registry"
	"github.com/vovakirdan/spacetris/internal/world"
)

// Config contains all user-tunable settings.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Countdown CountdownConfig `yaml:"countdown"`
	Scores    ScoresConfig    `yaml:"scores"`
	Audio     AudioConfig     `yaml:"audio"`
	Display   DisplayConfig   `yaml:"display"`
}

// WorldConfig selects the play field.
type WorldConfig struct {
	Preset  string `yaml:"preset"`
	Rows    int    `yaml:"rows"`    // 0 keeps the preset's height
	Columns int    `yaml:"columns"` // 0 keeps the preset's width
}

// CountdownConfig defines the delay before play starts or resumes.
type CountdownConfig struct {
	Ticks      int `yaml:"ticks"`
	IntervalMS int `yaml:"interval_ms"`
}

// ScoresConfig defines the high score table policy.
type ScoresConfig struct {
	Top           int `yaml:"top"`
	MaxNameLength int `yaml:"max_name_length"`
}

// AudioConfig controls sound effects and music. Volumes changed from the
// menu are saved with the scores and take precedence.
type AudioConfig struct {
	Sound       bool    `yaml:"sound"`
	Volume      float64 `yaml:"volume"` // Gain in [0, 1]
	Music       bool    `yaml:"music"`
	MusicVolume float64 `yaml:"music_volume"` // Gain in [0, 1]
}

// DisplayConfig toggles optional parts of the play screen.
type DisplayConfig struct {
	LandingShadow bool `yaml:"landing_shadow"`
	Statistics    bool `yaml:"statistics"`
	Starfield     bool `yaml:"starfield"`
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if !registry.Exists(c.World.Preset) {
		return fmt.Errorf("config: world.preset %q is not a known world, run 'spacetris worlds' to list them", c.World.Preset)
	}
	if c.World.Rows != 0 && c.World.Rows < 4 {
		return fmt.Errorf("config: world.rows must be at least 4, got %d", c.World.Rows)
	}
	if c.World.Columns != 0 && c.World.Columns < 4 {
		return fmt.Errorf("config: world.columns must be at least 4, got %d", c.World.Columns)
	}
	if c.Countdown.Ticks < 1 {
		return fmt.Errorf("config: countdown.ticks must be positive, got %d", c.Countdown.Ticks)
	}
	if c.Countdown.IntervalMS <= 0 {
		return fmt.Errorf("config: countdown.interval_ms must be positive, got %d", c.Countdown.IntervalMS)
	}
	if c.Scores.Top < 1 {
		return fmt.Errorf("config: scores.top must be positive, got %d", c.Scores.Top)
	}
	if c.Scores.MaxNameLength < 1 || c.Scores.MaxNameLength > 64 {
		return fmt.Errorf("config: scores.max_name_length must be in [1, 64], got %d", c.Scores.MaxNameLength)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 {
		return fmt.Errorf("config: audio.music_volume must be in [0, 1], got %g", c.Audio.MusicVolume)
	}
	return nil
}

// WorldConfig builds the world parameters for a field of rows x columns.
// Non-zero overrides from the world section take precedence.
func (c Config) WorldConfig(rows, columns int) world.Config {
	if c.World.Rows > 0 {
		rows = c.World.Rows
	}
	if c.World.Columns > 0 {
		columns = c.World.Columns
	}
	return world.Config{
		Rows:              rows,
		Columns:           columns,
		CountdownTicks:    c.Countdown.Ticks,
		CountdownInterval: time.Duration(c.Countdown.IntervalMS) * time.Millisecond,
		MaxNameLength:     c.Scores.MaxNameLength,
	}
}
