package puzzle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("puzzle.target", challenge.CategoryPuzzle, NewTarget, challenge.Meta{
		Name:          "Hit the Target",
		Description:   "Pick the expression that reaches the target",
		MinDifficulty: 3,
		BaseTime:      20 * time.Second,
	})
}

// Target shows a target number and candidate expressions; exactly one
// evaluates to the target.
type Target struct {
	challenge.Base
	target  int
	choices []string
}

// NewTarget builds one correct expression and offset distractors.
func NewTarget(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryPuzzle, level)
	mp := difficulty.ParamsFor(challenge.CategoryMath, level)

	a := mp.MinOperand + rng.Intn(mp.MaxOperand-mp.MinOperand+1)
	b := 2 + rng.Intn(9)
	c := mp.MinOperand + rng.Intn(mp.MaxOperand-mp.MinOperand+1)

	correct := fmt.Sprintf("%d x %d + %d", a, b, c)
	target := a*b + c

	n := p.PieceCount
	if n < 3 {
		n = 3
	}
	choices := make([]string, n)
	correctIdx := rng.Intn(n)
	for i := range choices {
		if i == correctIdx {
			choices[i] = correct
			continue
		}
		// Distractors perturb one operand, so they evaluate near but
		// never equal to the target.
		da, db, dc := a, b, c
		switch rng.Intn(3) {
		case 0:
			da += 1 + rng.Intn(3)
		case 1:
			db++
		default:
			dc += 1 + rng.Intn(5)
		}
		if da*db+dc == target {
			dc++
		}
		choices[i] = fmt.Sprintf("%d x %d + %d", da, db, dc)
	}

	return &Target{
		Base: challenge.Base{
			ChallengeID: "puzzle.target",
			Cat:         challenge.CategoryPuzzle,
			Level:       level,
			Name:        "Hit the Target",
			Answer:      correct,
		},
		target:  target,
		choices: choices,
	}
}

func (c *Target) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      fmt.Sprintf("Which expression equals %d?", c.target),
		Choices:     c.choices,
		Input:       challenge.InputChoice,
		AcceptInput: true,
	}
}
