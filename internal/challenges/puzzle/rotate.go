package puzzle

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

func init() {
	challenge.Register("puzzle.rotate", challenge.CategoryPuzzle, NewRotate, challenge.Meta{
		Name:          "Rotation",
		Description:   "Pick the pattern rotated a quarter turn",
		MinDifficulty: 5,
		BaseTime:      25 * time.Second,
	})
}

const rotateGrid = 3

// Rotate shows a 3x3 pattern; the player picks its clockwise quarter-turn
// among the other rotations and the mirror.
type Rotate struct {
	challenge.Base
	pattern [][]bool
	choices []string
}

// NewRotate generates an asymmetric pattern so all candidate grids are
// distinct and the correct choice is unambiguous.
func NewRotate(level int, rng *rand.Rand) challenge.Instance {
	var pattern [][]bool
	var candidates []string
	for {
		pattern = randomPattern(rng)
		rot90 := gridString(rotateCW(pattern))
		rot180 := gridString(rotateCW(rotateCW(pattern)))
		rot270 := gridString(rotateCW(rotateCW(rotateCW(pattern))))
		mirror := gridString(mirrorH(pattern))

		if distinct(rot90, rot180, rot270, mirror) {
			candidates = []string{rot90, rot180, rot270, mirror}
			break
		}
	}
	correct := candidates[0]

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	return &Rotate{
		Base: challenge.Base{
			ChallengeID: "puzzle.rotate",
			Cat:         challenge.CategoryPuzzle,
			Level:       level,
			Name:        "Rotation",
			Answer:      correct,
		},
		pattern: pattern,
		choices: candidates,
	}
}

// randomPattern fills about a third of the grid.
func randomPattern(rng *rand.Rand) [][]bool {
	g := make([][]bool, rotateGrid)
	for i := range g {
		g[i] = make([]bool, rotateGrid)
	}
	for _, idx := range rng.Perm(rotateGrid * rotateGrid)[:3+rng.Intn(2)] {
		g[idx/rotateGrid][idx%rotateGrid] = true
	}
	return g
}

func rotateCW(g [][]bool) [][]bool {
	n := len(g)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = g[n-1-j][i]
		}
	}
	return out
}

func mirrorH(g [][]bool) [][]bool {
	n := len(g)
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
		for j := range out[i] {
			out[i][j] = g[i][n-1-j]
		}
	}
	return out
}

func gridString(g [][]bool) string {
	var sb strings.Builder
	for i, row := range g {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			if cell {
				sb.WriteString("# ")
			} else {
				sb.WriteString(". ")
			}
		}
	}
	return sb.String()
}

func distinct(ss ...string) bool {
	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		if seen[s] {
			return false
		}
		seen[s] = true
	}
	return true
}

func (c *Rotate) Render(elapsed time.Duration) challenge.View {
	return challenge.View{
		Prompt: fmt.Sprintf("Rotate this pattern a quarter turn clockwise.\nWhich result is correct?\n\n%s",
			gridString(c.pattern)),
		Choices:     c.choices,
		Input:       challenge.InputChoice,
		AcceptInput: true,
	}
}
