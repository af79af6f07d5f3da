package logic

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

func init() {
	challenge.Register("logic.truth", challenge.CategoryLogic, NewTruth, challenge.Meta{
		Name:          "True or False",
		Description:   "Judge a numeric statement",
		MinDifficulty: 1,
		BaseTime:      15 * time.Second,
	})
}

// Truth presents a numeric statement to judge. The stored answer is a bool;
// Check coerces the choice text so the presentation can submit "True".
type Truth struct {
	challenge.Base
	statement string
}

// NewTruth generates a divisibility or comparison claim, true about half
// the time.
func NewTruth(level int, rng *rand.Rand) challenge.Instance {
	n := 10 + rng.Intn(40+level*10)
	makeTrue := rng.Intn(2) == 0

	var statement string
	var truth bool
	switch rng.Intn(3) {
	case 0:
		d := 3 + rng.Intn(6)
		m := n - n%d // Nearest multiple at or below n
		if makeTrue {
			statement = fmt.Sprintf("%d is divisible by %d", m, d)
			truth = true
		} else {
			statement = fmt.Sprintf("%d is divisible by %d", m+1, d)
			truth = false
		}
	case 1:
		a, b := n, n+1+rng.Intn(20)
		if makeTrue {
			statement = fmt.Sprintf("%d is less than %d", a, b)
			truth = true
		} else {
			statement = fmt.Sprintf("%d is greater than %d", a, b)
			truth = false
		}
	default:
		even := n - n%2
		if makeTrue {
			statement = fmt.Sprintf("%d is even", even)
			truth = true
		} else {
			statement = fmt.Sprintf("%d is even", even+1)
			truth = false
		}
	}

	return &Truth{
		Base: challenge.Base{
			ChallengeID: "logic.truth",
			Cat:         challenge.CategoryLogic,
			Level:       level,
			Name:        "True or False",
			Answer:      truth,
		},
		statement: statement,
	}
}

// Check accepts a bool or the choice text ("True"/"False").
func (c *Truth) Check(a challenge.Answer) bool {
	if s, ok := a.(string); ok {
		if b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s))); err == nil {
			a = b
		}
	}
	return c.Base.Check(a)
}

func (c *Truth) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt:      c.statement,
		Choices:     []string{"True", "False"},
		Input:       challenge.InputChoice,
		AcceptInput: true,
	}
}
