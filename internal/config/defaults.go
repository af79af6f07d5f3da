package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// Default returns the hardcoded default configuration, used when no YAML
// can be read at all.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			MaxLives:        5,
			StreakTarget:    3,
			CorrectDelayMS:  1500,
			WrongDelayMS:    2500,
			GameOverDelayMS: 2500,
			GraceDelayMS:    0,
		},
		Tick: TickConfig{
			IntervalMS: 100,
		},
	}
}
