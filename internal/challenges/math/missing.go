package math

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("math.missing", challenge.CategoryMath, NewMissing, challenge.Meta{
		Name:          "Missing Number",
		Description:   "Find the operand that completes the equation",
		MinDifficulty: 3,
		BaseTime:      18 * time.Second,
	})
}

// Missing hides one operand of a true equation.
type Missing struct {
	challenge.Base
	prompt string
}

// NewMissing builds an addition or subtraction with a hidden operand.
func NewMissing(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMath, level)

	a := p.MinOperand + rng.Intn(p.MaxOperand-p.MinOperand+1)
	b := p.MinOperand + rng.Intn(p.MaxOperand-p.MinOperand+1)

	var prompt string
	var answer int
	if rng.Intn(2) == 0 {
		// a + ? = a+b
		prompt = fmt.Sprintf("%d + ? = %d", a, a+b)
		answer = b
	} else {
		// ? - b = a-b  (hidden minuend is a)
		prompt = fmt.Sprintf("? - %d = %d", b, a-b)
		answer = a
	}

	return &Missing{
		Base: challenge.Base{
			ChallengeID: "math.missing",
			Cat:         challenge.CategoryMath,
			Level:       level,
			Name:        "Missing Number",
			Answer:      answer,
		},
		prompt: prompt,
	}
}

func (c *Missing) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      c.prompt,
		Input:       challenge.InputNumber,
		AcceptInput: true,
	}
}
