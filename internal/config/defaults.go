package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			SlideFrames:  5,
			AppearFrames: 5,
			FadeFrames:   20,
		},
		Rules: RulesConfig{
			SpawnFourChance: 0.1,
			WinRank:         11,
		},
		Runtime: RuntimeConfig{
			TickRate: 60,
		},
		Storage: StorageConfig{
			DBPath:  "~/.t2048/t2048.db",
			Profile: "local",
		},
		Audio: AudioConfig{
			Enabled:           true,
			MinIntervalFrames: 6,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.t2048/t2048.log",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/t2048_ed25519",
			IdleTimeout: 30,
		},
	}
}
