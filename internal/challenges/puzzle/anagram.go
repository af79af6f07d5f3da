// Package puzzle provides the puzzle challenge category: anagrams, target
// arithmetic, and pattern rotation.
package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("puzzle.anagram", challenge.CategoryPuzzle, NewAnagram, challenge.Meta{
		Name:          "Anagram",
		Description:   "Unscramble the letters into a word",
		MinDifficulty: 1,
		BaseTime:      25 * time.Second,
	})
}

// Words grouped by length so the difficulty knob picks harder material.
var anagramPool = map[int][]string{
	4: {"bird", "lamp", "frog", "mint", "cord", "dusk", "plum", "wick"},
	5: {"plant", "storm", "bread", "climb", "flute", "grasp", "ridge", "swirl"},
	6: {"branch", "copper", "fathom", "glider", "hollow", "jigsaw", "meadow", "tunnel"},
	7: {"blanket", "caravan", "dolphin", "fortune", "harvest", "lantern", "monsoon", "pasture"},
	8: {"doctrine", "festival", "hedgerow", "junction", "mackerel", "obsidian", "paradigm", "treasury"},
	9: {"blackbird", "carpenter", "dandelion", "gathering", "hurricane", "labyrinth", "orchestra", "waterfall"},
}

// Anagram scrambles a word; the player types the original.
type Anagram struct {
	challenge.Base
	scrambled string
}

// NewAnagram picks a word of the difficulty's length and shuffles it until
// the shuffle differs from the original.
func NewAnagram(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryPuzzle, level)

	length := p.WordLength
	pool, ok := anagramPool[length]
	for !ok && length > 4 {
		length--
		pool, ok = anagramPool[length]
	}
	word := pool[rng.Intn(len(pool))]

	letters := []byte(word)
	scrambled := word
	for scrambled == word {
		rng.Shuffle(len(letters), func(i, j int) {
			letters[i], letters[j] = letters[j], letters[i]
		})
		scrambled = string(letters)
	}

	return &Anagram{
		Base: challenge.Base{
			ChallengeID: "puzzle.anagram",
			Cat:         challenge.CategoryPuzzle,
			Level:       level,
			Name:        "Anagram",
			Answer:      word,
		},
		scrambled: scrambled,
	}
}

func (c *Anagram) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt: fmt.Sprintf("Unscramble this word:\n\n%s",
			strings.ToUpper(strings.Join(strings.Split(c.scrambled, ""), " "))),
		Input:       challenge.InputText,
		AcceptInput: true,
	}
}
