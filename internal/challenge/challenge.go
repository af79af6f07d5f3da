// Package challenge defines the contract every brain-training mini-game
// implements, plus the registry the engine draws challenges from.
// Challenges contain pure generation and grading logic with no external
// dependencies (especially no Bubble Tea); the platform handles input
// mapping, timing, and rendering.
package challenge

import (
	"math/rand"
	"time"
)

// Category classifies a challenge into one of the four fixed training areas.
type Category string

const (
	CategoryMath   Category = "math"
	CategoryLogic  Category = "logic"
	CategoryMemory Category = "memory"
	CategoryPuzzle Category = "puzzle"
)

// Categories returns the four fixed categories in display order.
func Categories() []Category {
	return []Category{CategoryMath, CategoryLogic, CategoryMemory, CategoryPuzzle}
}

// String returns the category name.
func (c Category) String() string { return string(c) }

// Answer is a submitted or stored answer. The concrete type depends on the
// challenge: int/float64, string, []int, or bool.
type Answer any

// InputKind tells the presentation layer what answer widget to show.
type InputKind int

const (
	InputText   InputKind = iota // Free-form text entry
	InputNumber                  // Numeric entry
	InputChoice                  // Pick one of View.Choices
)

// View is the current presentation of a challenge, returned by Render.
// Time-dependent challenges (memory reveals) return different Views as
// elapsed grows; the engine countdown is unaffected by the reveal phase.
type View struct {
	// Prompt is the content shown to the player.
	Prompt string

	// Choices, when non-nil, lists the selectable answers. The submitted
	// Answer for a choice challenge is the chosen option's text.
	Choices []string

	// Input selects the answer widget.
	Input InputKind

	// AcceptInput reports whether answers should be accepted yet.
	// False during a reveal phase; the countdown still runs.
	AcceptInput bool
}

// Instance is one live challenge round. Created by a Factory, rendered by
// the presentation layer, graded and cleaned up by the engine.
type Instance interface {
	// ID returns the challenge type identifier (e.g. "math.arithmetic").
	ID() string

	// Category returns the training area this challenge belongs to.
	Category() Category

	// Difficulty returns the level this instance was generated for.
	Difficulty() int

	// Title returns a short human-readable name for display.
	Title() string

	// Render returns the presentation for the given time since the
	// challenge was announced. Must be cheap and side-effect free.
	Render(elapsed time.Duration) View

	// Check grades a submitted answer. Total: unclassifiable input
	// returns false, never panics.
	Check(answer Answer) bool

	// CorrectAnswer returns the stored answer, stable for the lifetime
	// of the instance. Shown to the player after a wrong answer.
	CorrectAnswer() Answer

	// Cleanup releases anything the instance holds. Safe to call
	// repeatedly, including before Render was ever invoked.
	Cleanup()
}

// Factory builds a challenge instance for a difficulty level. The rng is
// provided by the registry so gameplay is reproducible under a fixed seed.
type Factory func(level int, rng *rand.Rand) Instance

// Meta describes a registered challenge type.
type Meta struct {
	Name        string
	Description string

	// MinDifficulty is the lowest level this challenge appears at.
	MinDifficulty int

	// MaxDifficulty is the highest level this challenge appears at.
	// Zero means unbounded.
	MaxDifficulty int

	// BaseTime is the nominal time budget before difficulty scaling.
	BaseTime time.Duration
}

// Base carries the fields every concrete challenge shares. Concrete games
// embed it and implement Render themselves.
type Base struct {
	ChallengeID string
	Cat         Category
	Level       int
	Name        string
	Answer      Answer
}

func (b *Base) ID() string            { return b.ChallengeID }
func (b *Base) Category() Category    { return b.Cat }
func (b *Base) Difficulty() int       { return b.Level }
func (b *Base) Title() string         { return b.Name }
func (b *Base) CorrectAnswer() Answer { return b.Answer }

// Check grades against the stored answer using the shared Match policy.
func (b *Base) Check(answer Answer) bool { return Match(b.Answer, answer) }

// Cleanup is a no-op; challenges holding resources override it.
func (b *Base) Cleanup() {}
