package logic

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("logic.oddone", challenge.CategoryLogic, NewOddOne, challenge.Meta{
		Name:          "Odd One Out",
		Description:   "Find the number that breaks the pattern",
		MinDifficulty: 2,
		BaseTime:      18 * time.Second,
	})
}

// OddOne shows numbers that share a property, except one.
type OddOne struct {
	challenge.Base
	choices []string
}

// NewOddOne generates multiples of a common divisor plus one intruder.
func NewOddOne(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryLogic, level)

	div := 2 + rng.Intn(4+level/3) // Shared divisor
	choices := make([]string, p.OptionCount)
	for i := range choices {
		choices[i] = fmt.Sprintf("%d", div*(2+rng.Intn(8+level)))
	}

	// The intruder is off by one from a multiple, so it never divides.
	oddIdx := rng.Intn(len(choices))
	intruder := div*(2+rng.Intn(8+level)) + 1
	choices[oddIdx] = fmt.Sprintf("%d", intruder)

	return &OddOne{
		Base: challenge.Base{
			ChallengeID: "logic.oddone",
			Cat:         challenge.CategoryLogic,
			Level:       level,
			Name:        "Odd One Out",
			Answer:      choices[oddIdx],
		},
		choices: choices,
	}
}

func (c *OddOne) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      "One of these numbers does not belong. Which?",
		Choices:     c.choices,
		Input:       challenge.InputChoice,
		AcceptInput: true,
	}
}
