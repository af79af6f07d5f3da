// Package config provides YAML-based configuration loading for the
// brain-training platform: engine tuning (lives, pacing, grace delay) and
// the presentation tick rate.
package config

// Config is the root configuration document.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Tick   TickConfig   `yaml:"tick"`
}

// EngineConfig tunes the game loop. Durations are in milliseconds to keep
// the YAML plain.
type EngineConfig struct {
	MaxLives        int `yaml:"max_lives"`
	StreakTarget    int `yaml:"streak_target"`
	CorrectDelayMS  int `yaml:"correct_delay_ms"`
	WrongDelayMS    int `yaml:"wrong_delay_ms"`
	GameOverDelayMS int `yaml:"game_over_delay_ms"`

	// GraceDelayMS postpones the countdown after a challenge appears so
	// the player can read the prompt. 0 starts the countdown immediately.
	GraceDelayMS int `yaml:"grace_delay_ms"`
}

// TickConfig controls how often the presentation layer advances the engine.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}
