package memory

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("memory.words", challenge.CategoryMemory, NewWords, challenge.Meta{
		Name:          "Word Recall",
		Description:   "Memorize a word list, then recall one position",
		MinDifficulty: 2,
		BaseTime:      20 * time.Second,
	})
}

var wordPool = []string{
	"anchor", "basket", "candle", "dolphin", "ember", "falcon", "garnet",
	"hammock", "island", "jungle", "kettle", "lantern", "marble", "nectar",
	"orchid", "pebble", "quiver", "ribbon", "saddle", "timber", "umbrella",
	"velvet", "walnut", "yonder", "zephyr",
}

// Words flashes a word list, then asks for the word at one position.
// Grading is case-insensitive (string policy).
type Words struct {
	challenge.Base
	words  []string
	askIdx int // 0-based position being asked about
	reveal time.Duration
}

// NewWords samples distinct words sized by the difficulty knobs.
func NewWords(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMemory, level)

	count := p.SequenceLength
	if count > len(wordPool) {
		count = len(wordPool)
	}

	perm := rng.Perm(len(wordPool))
	words := make([]string, count)
	for i := range words {
		words[i] = wordPool[perm[i]]
	}
	askIdx := rng.Intn(count)

	return &Words{
		Base: challenge.Base{
			ChallengeID: "memory.words",
			Cat:         challenge.CategoryMemory,
			Level:       level,
			Name:        "Word Recall",
			Answer:      words[askIdx],
		},
		words:  words,
		askIdx: askIdx,
		reveal: p.RevealTime,
	}
}

func (c *Words) Render(elapsed time.Duration) challenge.View {
	if elapsed < c.reveal {
		return challenge.View{
			Prompt:      fmt.Sprintf("Memorize these words:\n\n%s", strings.Join(c.words, "   ")),
			Input:       challenge.InputText,
			AcceptInput: false,
		}
	}
	return challenge.View{
		Prompt:      fmt.Sprintf("What was word number %d?", c.askIdx+1),
		Input:       challenge.InputText,
		AcceptInput: true,
	}
}
