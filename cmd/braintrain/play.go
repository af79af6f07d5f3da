package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/engine"
	"github.com/vovakirdan/tui-braintrain/internal/platform/tui"
	"github.com/vovakirdan/tui-braintrain/internal/stats"
)

var flagGraceMS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a training run",
	Long: `Start a training run: one timed challenge after another, harder each
time, until your lives run out.

Controls:
  Enter        - Submit answer
  Up/Down/j/k  - Pick a choice
  1-9          - Submit a numbered choice directly
  Esc          - Pause / resume
  R            - Play again (after game over)
  Ctrl+C       - Quit

Examples:
  braintrain play
  braintrain play --grace 2500       # 2.5s to read before the clock starts
  braintrain play --seed 42          # Reproducible challenge order
  braintrain play --config ./my-engine.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagGraceMS, "grace", -1,
		"Grace period in ms before the countdown starts (-1 = use config)")
}

func runPlay(_ *cobra.Command, _ []string) {
	engCfg, tick, err := loadPlatformConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagGraceMS >= 0 {
		engCfg.GraceDelay = time.Duration(flagGraceMS) * time.Millisecond
	}

	if challenge.Default.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no challenges registered")
		os.Exit(1)
	}
	if flagSeed != 0 {
		challenge.Default.Reseed(flagSeed)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open stats storage
	store, err := stats.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open stats database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var recorder engine.StatsRecorder
	if store != nil {
		recorder = store
	}
	eng := engine.New(challenge.Default, recorder, engCfg)

	runErr := tui.Run(eng, tui.Options{
		TickInterval: tick,
		Width:        width,
		Height:       height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
