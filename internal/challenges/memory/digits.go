// Package memory provides the recall challenge category. These challenges
// use the two-phase render contract: the content is visible while elapsed
// is inside the reveal window, then hidden, at which point input opens.
// The engine countdown runs through both phases.
package memory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("memory.digits", challenge.CategoryMemory, NewDigits, challenge.Meta{
		Name:          "Digit Recall",
		Description:   "Memorize a digit sequence, then type it back",
		MinDifficulty: 1,
		BaseTime:      20 * time.Second,
	})
}

// Digits flashes a digit string and asks the player to reproduce it.
type Digits struct {
	challenge.Base
	digits string
	reveal time.Duration
}

// NewDigits generates a digit string sized by the difficulty knobs.
// The answer is a string so leading zeros survive grading.
func NewDigits(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMemory, level)

	buf := make([]byte, p.SequenceLength)
	for i := range buf {
		buf[i] = byte('0' + rng.Intn(10))
	}
	digits := string(buf)

	return &Digits{
		Base: challenge.Base{
			ChallengeID: "memory.digits",
			Cat:         challenge.CategoryMemory,
			Level:       level,
			Name:        "Digit Recall",
			Answer:      digits,
		},
		digits: digits,
		reveal: p.RevealTime,
	}
}

func (c *Digits) Render(elapsed time.Duration) challenge.View {
	if elapsed < c.reveal {
		return challenge.View{
			Prompt:      fmt.Sprintf("Memorize:\n\n%s", spaced(c.digits)),
			Input:       challenge.InputText,
			AcceptInput: false,
		}
	}
	return challenge.View{
		Prompt:      "Type the digits you saw:",
		Input:       challenge.InputText,
		AcceptInput: true,
	}
}

// spaced pads digits apart so they read as separate items.
func spaced(s string) string {
	out := make([]byte, 0, len(s)*2)
	for i := 0; i < len(s); i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, s[i])
	}
	return string(out)
}
