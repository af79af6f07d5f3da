package math

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("math.compare", challenge.CategoryMath, NewCompare, challenge.Meta{
		Name:          "Bigger Value",
		Description:   "Pick the expression with the larger value",
		MinDifficulty: 1,
		BaseTime:      12 * time.Second,
	})
}

// Compare shows two expressions; the player picks the larger one.
type Compare struct {
	challenge.Base
	choices []string
}

// NewCompare generates two sums with distinct totals.
func NewCompare(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMath, level)

	exprA, valA := sum(rng, p.MinOperand, p.MaxOperand)
	exprB, valB := sum(rng, p.MinOperand, p.MaxOperand)
	for valB == valA {
		exprB, valB = sum(rng, p.MinOperand, p.MaxOperand)
	}

	correct := exprA
	if valB > valA {
		correct = exprB
	}

	return &Compare{
		Base: challenge.Base{
			ChallengeID: "math.compare",
			Cat:         challenge.CategoryMath,
			Level:       level,
			Name:        "Bigger Value",
			Answer:      correct,
		},
		choices: []string{exprA, exprB},
	}
}

func sum(rng *rand.Rand, lo, hi int) (string, int) {
	a := lo + rng.Intn(hi-lo+1)
	b := lo + rng.Intn(hi-lo+1)
	return fmt.Sprintf("%d + %d", a, b), a + b
}

func (c *Compare) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      "Which expression has the larger value?",
		Choices:     c.choices,
		Input:       challenge.InputChoice,
		AcceptInput: true,
	}
}
