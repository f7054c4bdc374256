// Package config provides YAML-based configuration loading for the 2048
// terminal game and its SSH server.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Config is the full application configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Rules     RulesConfig     `yaml:"rules"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
	Storage   StorageConfig   `yaml:"storage"`
	Audio     AudioConfig     `yaml:"audio"`
	Log       LogConfig       `yaml:"log"`
	SSH       SSHConfig       `yaml:"ssh"`
}

// AnimationConfig sets the length of each animation in frames.
type AnimationConfig struct {
	SlideFrames  int `yaml:"slide_frames"`
	AppearFrames int `yaml:"appear_frames"`
	FadeFrames   int `yaml:"fade_frames"` // one half of a screen transition
}

// RulesConfig defines the game rules.
type RulesConfig struct {
	SpawnFourChance float64 `yaml:"spawn_four_chance"`
	WinRank         int     `yaml:"win_rank"` // 11 = the 2048 tile
}

// RuntimeConfig defines the frame loop.
type RuntimeConfig struct {
	TickRate int `yaml:"tick_rate"` // frames per second
}

// StorageConfig locates the save database.
type StorageConfig struct {
	DBPath  string `yaml:"db_path"`
	Profile string `yaml:"profile"`
}

// AudioConfig controls the terminal bell cues.
type AudioConfig struct {
	Enabled           bool `yaml:"enabled"`
	MinIntervalFrames int  `yaml:"min_interval_frames"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // TUI mode log file; empty disables logging
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKey     string `yaml:"host_key"`
	IdleTimeout int    `yaml:"idle_timeout"` // minutes
}

// GameRules converts the rules section for the engine.
func (c Config) GameRules() t2048.Rules {
	return t2048.Rules{
		SpawnFourChance: c.Rules.SpawnFourChance,
		WinRank:         c.Rules.WinRank,
	}
}

// Timing converts the animation section for the engine.
func (c Config) Timing() t2048.Timing {
	return t2048.Timing{
		SlideFrames:  c.Animation.SlideFrames,
		AppearFrames: c.Animation.AppearFrames,
	}
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeout) * time.Minute
}

// Validate reports every invalid value in the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.Animation.SlideFrames < 1 {
		errs = append(errs, fmt.Errorf("animation.slide_frames must be at least 1, got %d", c.Animation.SlideFrames))
	}
	if c.Animation.AppearFrames < 1 {
		errs = append(errs, fmt.Errorf("animation.appear_frames must be at least 1, got %d", c.Animation.AppearFrames))
	}
	if c.Animation.FadeFrames < 1 {
		errs = append(errs, fmt.Errorf("animation.fade_frames must be at least 1, got %d", c.Animation.FadeFrames))
	}
	if c.Rules.SpawnFourChance < 0 || c.Rules.SpawnFourChance > 1 {
		errs = append(errs, fmt.Errorf("rules.spawn_four_chance must be in [0, 1], got %v", c.Rules.SpawnFourChance))
	}
	if c.Rules.WinRank < 3 || c.Rules.WinRank > t2048.MaxRank {
		errs = append(errs, fmt.Errorf("rules.win_rank must be in [3, %d], got %d", t2048.MaxRank, c.Rules.WinRank))
	}
	if c.Runtime.TickRate < 1 || c.Runtime.TickRate > 240 {
		errs = append(errs, fmt.Errorf("runtime.tick_rate must be in [1, 240], got %d", c.Runtime.TickRate))
	}
	if c.Storage.DBPath == "" {
		errs = append(errs, errors.New("storage.db_path must not be empty"))
	}
	if c.Storage.Profile == "" {
		errs = append(errs, errors.New("storage.profile must not be empty"))
	}
	if c.Audio.MinIntervalFrames < 0 {
		errs = append(errs, fmt.Errorf("audio.min_interval_frames must not be negative, got %d", c.Audio.MinIntervalFrames))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative, got %d", c.SSH.IdleTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
