// Package logic provides the reasoning challenge category: number series,
// odd-one-out, and true/false statements.
package logic

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("logic.sequence", challenge.CategoryLogic, NewSequence, challenge.Meta{
		Name:          "Next in Series",
		Description:   "Continue the number sequence",
		MinDifficulty: 1,
		BaseTime:      20 * time.Second,
	})
}

// Sequence shows the first terms of a progression and asks for the next.
type Sequence struct {
	challenge.Base
	terms []int
}

// NewSequence builds an arithmetic, geometric, or step-growing progression
// depending on level.
func NewSequence(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryLogic, level)

	start := 1 + rng.Intn(10+level)
	terms := make([]int, p.PatternLength)

	var next int
	switch kind := rng.Intn(3); {
	case kind == 1 && level >= 4:
		// Geometric, small ratio
		ratio := 2 + rng.Intn(2)
		v := start
		for i := range terms {
			terms[i] = v
			v *= ratio
		}
		next = v
	case kind == 2 && level >= 6:
		// Increasing step: +d, +d+1, +d+2, ...
		d := 1 + rng.Intn(4)
		v := start
		for i := range terms {
			terms[i] = v
			v += d + i
		}
		next = v
	default:
		// Arithmetic
		d := 2 + rng.Intn(5+level)
		v := start
		for i := range terms {
			terms[i] = v
			v += d
		}
		next = v
	}

	return &Sequence{
		Base: challenge.Base{
			ChallengeID: "logic.sequence",
			Cat:         challenge.CategoryLogic,
			Level:       level,
			Name:        "Next in Series",
			Answer:      next,
		},
		terms: terms,
	}
}

func (c *Sequence) Render(elapsed time.Duration) challenge.View {
	parts := make([]string, len(c.terms))
	for i, t := range c.terms {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return challenge.View{
		Prompt:      fmt.Sprintf("What comes next?\n\n%s, ?", strings.Join(parts, ", ")),
		Input:       challenge.InputNumber,
		AcceptInput: true,
	}
}
