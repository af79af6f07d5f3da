// braintrain is a terminal brain-training game: a run of short timed
// challenges (math, logic, memory, puzzle) gated by lives, with difficulty
// rising on every correct answer.
//
// Usage:
//
//	braintrain play          - Start a training run
//	braintrain list          - List available challenge types
//	braintrain stats         - Show play history and rank
//	braintrain serve         - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible challenge selection
//	--db <path>      - Set database path (default: ~/.braintrain/stats.db)
//	--config <path>  - Path to a custom engine config YAML
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-braintrain/internal/config"
	"github.com/vovakirdan/tui-braintrain/internal/engine"

	// Import challenge packages to register them
	_ "github.com/vovakirdan/tui-braintrain/internal/challenges/logic"
	_ "github.com/vovakirdan/tui-braintrain/internal/challenges/math"
	_ "github.com/vovakirdan/tui-braintrain/internal/challenges/memory"
	_ "github.com/vovakirdan/tui-braintrain/internal/challenges/puzzle"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "braintrain",
	Short: "Brain Train - Timed brain teasers in your terminal",
	Long: `Brain Train is a terminal game of short timed challenges across four
categories: math, logic, memory, and puzzle. Every correct answer raises
the difficulty and trims the clock; three in a row win a life back; five
mistakes end the run.

Available commands:
  play     - Start a training run
  list     - Show all challenge types
  stats    - View play history, high score, and rank
  serve    - Start SSH server for remote play

Examples:
  braintrain play
  braintrain play --grace 2500
  braintrain stats
  braintrain serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.braintrain/stats.db", "Path to stats database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom engine config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadPlatformConfig reads the YAML config and converts it to engine
// tuning plus the presentation tick interval.
func loadPlatformConfig() (engine.Config, time.Duration, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return engine.Config{}, 0, err
	}

	eng := engine.Config{
		MaxLives:      cfg.Engine.MaxLives,
		StreakTarget:  cfg.Engine.StreakTarget,
		CorrectDelay:  time.Duration(cfg.Engine.CorrectDelayMS) * time.Millisecond,
		WrongDelay:    time.Duration(cfg.Engine.WrongDelayMS) * time.Millisecond,
		GameOverDelay: time.Duration(cfg.Engine.GameOverDelayMS) * time.Millisecond,
		GraceDelay:    time.Duration(cfg.Engine.GraceDelayMS) * time.Millisecond,
	}

	tick := time.Duration(cfg.Tick.IntervalMS) * time.Millisecond
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}

	return eng, tick, nil
}
