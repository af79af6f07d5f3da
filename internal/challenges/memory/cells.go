package memory

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/difficulty"
)

func init() {
	challenge.Register("memory.cells", challenge.CategoryMemory, NewCells, challenge.Meta{
		Name:          "Flash Cells",
		Description:   "Remember which grid cells lit up, in order",
		MinDifficulty: 4,
		BaseTime:      25 * time.Second,
	})
}

// Cells highlights numbered grid cells during the reveal; the player
// enters the highlighted cell numbers in the order they were shown. The
// stored answer is an ordered []int.
type Cells struct {
	challenge.Base
	grid   int
	order  []int
	reveal time.Duration
}

// NewCells picks a sequence of distinct cells on a difficulty-sized grid.
func NewCells(level int, rng *rand.Rand) challenge.Instance {
	p := difficulty.ParamsFor(challenge.CategoryMemory, level)

	total := p.GridSize * p.GridSize
	count := p.SequenceLength
	if count > total/2 {
		count = total / 2
	}

	perm := rng.Perm(total)
	order := make([]int, count)
	for i := range order {
		order[i] = perm[i] + 1 // Cells are numbered from 1
	}

	return &Cells{
		Base: challenge.Base{
			ChallengeID: "memory.cells",
			Cat:         challenge.CategoryMemory,
			Level:       level,
			Name:        "Flash Cells",
			Answer:      order,
		},
		grid:   p.GridSize,
		order:  order,
		reveal: p.RevealTime,
	}
}

// Check accepts an ordered []int or a text list like "3 7 1" or "3,7,1".
func (c *Cells) Check(a challenge.Answer) bool {
	if s, ok := a.(string); ok {
		fields := strings.FieldsFunc(s, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		})
		nums := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return false
			}
			nums = append(nums, n)
		}
		a = nums
	}
	return c.Base.Check(a)
}

func (c *Cells) Render(elapsed time.Duration) challenge.View {
	if elapsed < c.reveal {
		return challenge.View{
			Prompt:      fmt.Sprintf("Watch the cells:\n\n%s", c.renderGrid(true)),
			Input:       challenge.InputText,
			AcceptInput: false,
		}
	}
	return challenge.View{
		Prompt: fmt.Sprintf("Which cells lit up? Enter their numbers in order,\nseparated by spaces.\n\n%s",
			c.renderGrid(false)),
		Input:       challenge.InputText,
		AcceptInput: true,
	}
}

// renderGrid draws the numbered grid; when lit, the sequence cells are
// marked with their position in the flash order.
func (c *Cells) renderGrid(lit bool) string {
	mark := make(map[int]int, len(c.order)) // cell number -> 1-based flash position
	if lit {
		for i, cell := range c.order {
			mark[cell] = i + 1
		}
	}

	var sb strings.Builder
	for row := 0; row < c.grid; row++ {
		for col := 0; col < c.grid; col++ {
			cell := row*c.grid + col + 1
			if pos, ok := mark[cell]; ok {
				fmt.Fprintf(&sb, "[*%d] ", pos)
			} else {
				fmt.Fprintf(&sb, "[%2d] ", cell)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
