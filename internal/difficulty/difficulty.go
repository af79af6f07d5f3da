// Package difficulty maps (category, level) to the numeric knobs challenge
// generators consume. Every function here is pure and total: any level >= 1
// produces a valid parameter set, every knob is monotonic in level and
// saturates, and time limits never shrink below Floor.
package difficulty

import (
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

// Floor is the minimum time budget any challenge can be given.
const Floor = 5 * time.Second

// Params holds the tunable knobs for one category at one level. Fields
// outside the category's group are left at their zero value.
type Params struct {
	// Math
	MinOperand   int // Smallest operand value
	MaxOperand   int // Largest operand value
	OperandCount int // Operands per expression

	// Logic
	OptionCount   int // Choices shown for pick-one challenges
	PatternLength int // Visible terms in a sequence

	// Memory
	SequenceLength int           // Items to memorize
	GridSize       int           // Side length of the cell grid
	RevealTime     time.Duration // How long content stays visible

	// Puzzle
	WordLength int // Letters in an anagram
	PieceCount int // Elements in a composition puzzle

	// TimeLimit is the category's nominal budget at this level, already
	// clamped to Floor. Challenge types with their own BaseTime use
	// TimerFor instead.
	TimeLimit time.Duration
}

// ParamsFor returns the knobs for a category at a level. Levels below 1 are
// treated as 1.
func ParamsFor(cat challenge.Category, level int) Params {
	if level < 1 {
		level = 1
	}

	p := Params{
		TimeLimit: TimerFor(30*time.Second, level),
	}

	switch cat {
	case challenge.CategoryMath:
		p.MinOperand = 1
		p.MaxOperand = clampInt(10+level*5, 10, 200)
		p.OperandCount = clampInt(2+level/5, 2, 4)
	case challenge.CategoryLogic:
		p.OptionCount = clampInt(3+level/4, 3, 6)
		p.PatternLength = clampInt(3+level/3, 3, 7)
	case challenge.CategoryMemory:
		p.SequenceLength = clampInt(3+level/2, 3, 9)
		p.GridSize = clampInt(3+level/6, 3, 5)
		p.RevealTime = clampDur(4*time.Second-time.Duration(level-1)*200*time.Millisecond,
			1500*time.Millisecond, 4*time.Second)
	case challenge.CategoryPuzzle:
		p.WordLength = clampInt(4+level/4, 4, 9)
		p.PieceCount = clampInt(3+level/5, 3, 6)
	}

	return p
}

// timerStep is how much of the nominal budget each level above 1 removes.
const timerStep = 500 * time.Millisecond

// TimerFor reduces a challenge type's nominal time budget by a fixed step
// per level above 1, clamped to Floor. Different challenge types declare
// different base budgets, but all of them shorten the same way as the
// player advances.
func TimerFor(base time.Duration, level int) time.Duration {
	if level < 1 {
		level = 1
	}
	t := base - time.Duration(level-1)*timerStep
	if t < Floor {
		return Floor
	}
	return t
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDur(v, lo, hi time.Duration) time.Duration {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
