// Package math provides the arithmetic challenge category: expression
// evaluation, magnitude comparison, and missing-operand problems.
// Generators draw their ranges and operand counts from the difficulty
// scaler, so the same types cover the whole progression.
package math

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("math.arithmetic", challenge.CategoryMath, NewArithmetic, challenge.Meta{
		Name:          "Quick Math",
		Description:   "Evaluate an arithmetic expression",
		MinDifficulty: 1,
		BaseTime:      15 * time.Second,
	})
}

// Arithmetic asks the player to evaluate a chain of additions and
// subtractions (multiplication joins at higher levels).
type Arithmetic struct {
	challenge.Base
	expr string
}

// NewArithmetic generates an expression sized by the difficulty knobs.
func NewArithmetic(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMath, level)

	first := p.MinOperand + rng.Intn(p.MaxOperand-p.MinOperand+1)
	expr := fmt.Sprintf("%d", first)
	total := first

	for i := 1; i < p.OperandCount; i++ {
		n := p.MinOperand + rng.Intn(p.MaxOperand-p.MinOperand+1)
		switch r := rng.Intn(3); {
		case r == 2 && level >= 8:
			// Multiply the running total by a small factor; parenthesize
			// so the displayed expression reads left to right.
			n = 2 + rng.Intn(8)
			total *= n
			expr = fmt.Sprintf("(%s) x %d", expr, n)
		case r == 1:
			total -= n
			expr = fmt.Sprintf("%s - %d", expr, n)
		default:
			total += n
			expr = fmt.Sprintf("%s + %d", expr, n)
		}
	}

	return &Arithmetic{
		Base: challenge.Base{
			ChallengeID: "math.arithmetic",
			Cat:         challenge.CategoryMath,
			Level:       level,
			Name:        "Quick Math",
			Answer:      total,
		},
		expr: expr,
	}
}

func (c *Arithmetic) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      fmt.Sprintf("%s = ?", c.expr),
		Input:       challenge.InputNumber,
		AcceptInput: true,
	}
}
