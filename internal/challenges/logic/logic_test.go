package logic

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

func TestSequenceAnswerContinuesPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, level := range []int{1, 4, 6, 20} {
		for i := 0; i < 50; i++ {
			inst := NewSequence(level, rng)
			prompt := inst.Render(0).Prompt

			_, list, ok := strings.Cut(prompt, "\n\n")
			if !ok {
				t.Fatalf("prompt %q missing the series line", prompt)
			}
			fields := strings.Split(strings.TrimSuffix(list, ", ?"), ", ")
			terms := make([]int, len(fields))
			for j, f := range fields {
				n, err := strconv.Atoi(f)
				if err != nil {
					t.Fatalf("bad term %q in %q", f, prompt)
				}
				terms[j] = n
			}
			if len(terms) < 3 {
				t.Fatalf("only %d visible terms at level %d", len(terms), level)
			}

			// A short prefix can fit more than one progression; the stored
			// answer must continue at least one of them.
			candidates := continuations(terms)
			if len(candidates) == 0 {
				t.Fatalf("series %v matches no known progression", terms)
			}
			accepted := false
			for _, next := range candidates {
				if inst.Check(next) {
					accepted = true
					break
				}
			}
			if !accepted {
				t.Errorf("series %v: none of %v accepted (answer %v)", terms, candidates, inst.CorrectAnswer())
			}
		}
	}
}

// continuations returns the next term of every known progression the terms
// are consistent with.
func continuations(terms []int) []int {
	n := len(terms)
	var out []int

	// Constant difference
	d := terms[1] - terms[0]
	arith := true
	for i := 2; i < n; i++ {
		if terms[i]-terms[i-1] != d {
			arith = false
			break
		}
	}
	if arith {
		out = append(out, terms[n-1]+d)
	}

	// Constant ratio
	if terms[0] != 0 && terms[1]%terms[0] == 0 {
		r := terms[1] / terms[0]
		geo := true
		for i := 2; i < n; i++ {
			if terms[i] != terms[i-1]*r {
				geo = false
				break
			}
		}
		if geo {
			out = append(out, terms[n-1]*r)
		}
	}

	// Differences growing by one
	step := terms[1] - terms[0]
	growing := true
	for i := 2; i < n; i++ {
		step++
		if terms[i]-terms[i-1] != step {
			growing = false
			break
		}
	}
	if growing {
		out = append(out, terms[n-1]+step+1)
	}
	return out
}

func TestOddOneIntruderIsTheAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		inst := NewOddOne(5, rng)
		view := inst.Render(0)

		if view.Input != challenge.InputChoice || len(view.Choices) < 3 {
			t.Fatalf("odd-one view = %+v", view)
		}

		answer, ok := inst.CorrectAnswer().(string)
		if !ok {
			t.Fatalf("answer %v is not a choice string", inst.CorrectAnswer())
		}
		found := false
		for _, c := range view.Choices {
			if c == answer {
				found = true
			}
		}
		if !found {
			t.Fatalf("answer %q not among choices %v", answer, view.Choices)
		}

		// Every choice except the answer shares a common divisor > 1 with
		// the rest; the answer does not.
		var regular []int
		var intruder int
		for _, c := range view.Choices {
			v, err := strconv.Atoi(c)
			if err != nil {
				t.Fatalf("bad choice %q", c)
			}
			if c == answer {
				intruder = v
			} else {
				regular = append(regular, v)
			}
		}
		g := regular[0]
		for _, v := range regular[1:] {
			g = gcd(g, v)
		}
		if g < 2 {
			t.Fatalf("regular choices %v share no divisor", regular)
		}
		if intruder%g == 0 {
			// The intruder may coincidentally divide a smaller shared
			// factor, but never the generator's divisor; if it divides the
			// full gcd the puzzle is ambiguous.
			t.Errorf("intruder %d divides the shared divisor %d of %v", intruder, g, regular)
		}

		if !inst.Check(answer) || inst.Check(view.Choices[(indexOf(view.Choices, answer)+1)%len(view.Choices)]) {
			t.Error("Check disagrees with the intruder choice")
		}
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func indexOf(ss []string, s string) int {
	for i, v := range ss {
		if v == s {
			return i
		}
	}
	return -1
}

func TestTruthStatementEvaluation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		inst := NewTruth(3, rng)
		stmt := inst.Render(0).Prompt

		want, ok := evalStatement(stmt)
		if !ok {
			t.Fatalf("unrecognized statement %q", stmt)
		}
		if inst.CorrectAnswer() != challenge.Answer(want) {
			t.Errorf("%q: stored answer %v, statement is %v", stmt, inst.CorrectAnswer(), want)
		}
	}
}

func evalStatement(stmt string) (bool, bool) {
	var a, b int
	if n, _ := fmt.Sscanf(stmt, "%d is divisible by %d", &a, &b); n == 2 {
		return a%b == 0, true
	}
	if n, _ := fmt.Sscanf(stmt, "%d is less than %d", &a, &b); n == 2 {
		return a < b, true
	}
	if n, _ := fmt.Sscanf(stmt, "%d is greater than %d", &a, &b); n == 2 {
		return a > b, true
	}
	if n, _ := fmt.Sscanf(stmt, "%d is even", &a); n == 1 {
		return a%2 == 0, true
	}
	return false, false
}

func TestTruthCoercesChoiceText(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		inst := NewTruth(1, rng)
		want := inst.CorrectAnswer().(bool)

		text := "False"
		if want {
			text = "True"
		}
		if !inst.Check(text) {
			t.Errorf("choice text %q rejected for answer %v", text, want)
		}
		if !inst.Check(strings.ToLower(text)) {
			t.Errorf("lowercased %q rejected", text)
		}
		if inst.Check(!want) {
			t.Error("negated bool accepted")
		}
		if inst.Check("maybe") {
			t.Error("unparseable text accepted")
		}
	}
}

func TestRegistration(t *testing.T) {
	for _, id := range []string{"logic.sequence", "logic.oddone", "logic.truth"} {
		if _, err := challenge.Default.Get(id, 10); err != nil {
			t.Errorf("challenge %s not registered: %v", id, err)
		}
	}
}
