package puzzle

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

func TestAnagramIsPermutationOfAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, level := range []int{1, 5, 12, 30} {
		for i := 0; i < 50; i++ {
			inst := NewAnagram(level, rng)
			view := inst.Render(0)

			_, letterLine, ok := strings.Cut(view.Prompt, "\n\n")
			if !ok {
				t.Fatalf("prompt %q missing the letter line", view.Prompt)
			}
			scrambled := strings.ToLower(strings.ReplaceAll(letterLine, " ", ""))
			answer := inst.CorrectAnswer().(string)

			if scrambled == answer {
				t.Errorf("scramble equals the original word %q", answer)
			}
			if sortLetters(scrambled) != sortLetters(answer) {
				t.Errorf("scramble %q is not a permutation of %q", scrambled, answer)
			}

			if !inst.Check(answer) {
				t.Errorf("answer %q rejected", answer)
			}
			if !inst.Check(strings.ToUpper(answer)) {
				t.Errorf("uppercased answer %q rejected", answer)
			}
		}
	}
}

func sortLetters(s string) string {
	b := []byte(s)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

func TestAnagramLengthFollowsDifficulty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	short := len(NewAnagram(1, rng).CorrectAnswer().(string))
	long := len(NewAnagram(40, rng).CorrectAnswer().(string))
	if short >= long {
		t.Errorf("word length did not grow with level: %d vs %d", short, long)
	}
	if long > 9 {
		t.Errorf("word length %d exceeds the pool", long)
	}
}

func TestTargetExactlyOneChoiceHits(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		inst := NewTarget(5, rng)
		view := inst.Render(0)

		var target int
		if _, err := fmt.Sscanf(view.Prompt, "Which expression equals %d?", &target); err != nil {
			t.Fatalf("unrecognized prompt %q", view.Prompt)
		}
		if len(view.Choices) < 3 {
			t.Fatalf("only %d choices", len(view.Choices))
		}

		hits := 0
		for _, c := range view.Choices {
			var a, b, cc int
			if _, err := fmt.Sscanf(c, "%d x %d + %d", &a, &b, &cc); err != nil {
				t.Fatalf("unrecognized choice %q", c)
			}
			if a*b+cc == target {
				hits++
				if !inst.Check(c) {
					t.Errorf("hitting choice %q rejected (answer %v)", c, inst.CorrectAnswer())
				}
			} else if inst.Check(c) {
				t.Errorf("missing choice %q accepted", c)
			}
		}
		if hits != 1 {
			t.Errorf("%d choices hit target %d in %v", hits, target, view.Choices)
		}
	}
}

func TestRotateAnswerIsQuarterTurn(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		inst := NewRotate(6, rng)
		view := inst.Render(0)

		_, shown, ok := strings.Cut(view.Prompt, "\n\n")
		if !ok {
			t.Fatalf("prompt %q missing the pattern", view.Prompt)
		}
		pattern := parseGrid(t, shown)
		want := gridString(rotateCW(pattern))

		if inst.CorrectAnswer() != challenge.Answer(want) {
			t.Errorf("answer is not the clockwise quarter turn of the shown pattern")
		}
		found := false
		for _, c := range view.Choices {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Errorf("correct rotation missing from choices")
		}

		// The wrong rotations and the mirror must all be distinguishable.
		seen := map[string]bool{}
		for _, c := range view.Choices {
			if seen[c] {
				t.Errorf("duplicate choice grid")
			}
			seen[c] = true
		}
	}
}

func parseGrid(t *testing.T, s string) [][]bool {
	t.Helper()
	lines := strings.Split(s, "\n")
	if len(lines) != rotateGrid {
		t.Fatalf("grid has %d rows, want %d:\n%s", len(lines), rotateGrid, s)
	}
	g := make([][]bool, rotateGrid)
	for i, line := range lines {
		cells := strings.Fields(line)
		if len(cells) != rotateGrid {
			t.Fatalf("row %d has %d cells: %q", i, len(cells), line)
		}
		g[i] = make([]bool, rotateGrid)
		for j, c := range cells {
			g[i][j] = c == "#"
		}
	}
	return g
}

func TestRotateHelpers(t *testing.T) {
	p := [][]bool{
		{true, false, false},
		{false, false, false},
		{false, false, true},
	}

	r := rotateCW(p)
	// (0,0) moves to (0,2); (2,2) moves to (2,0).
	if !r[0][2] || !r[2][0] {
		t.Errorf("rotateCW moved cells wrong:\n%s", gridString(r))
	}

	back := rotateCW(rotateCW(rotateCW(rotateCW(p))))
	if gridString(back) != gridString(p) {
		t.Error("four quarter turns are not the identity")
	}

	m := mirrorH(p)
	if !m[0][2] || !m[2][0] {
		t.Errorf("mirrorH moved cells wrong:\n%s", gridString(m))
	}
	if gridString(mirrorH(m)) != gridString(p) {
		t.Error("double mirror is not the identity")
	}
}

func TestRegistration(t *testing.T) {
	for _, id := range []string{"puzzle.anagram", "puzzle.target", "puzzle.rotate"} {
		if _, err := challenge.Default.Get(id, 10); err != nil {
			t.Errorf("challenge %s not registered: %v", id, err)
		}
	}
}
