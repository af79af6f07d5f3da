package math

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

// evalExpr evaluates the generated expressions: numbers joined by +, - and
// x, with parenthesized sub-expressions, applied left to right.
func evalExpr(t *testing.T, expr string) int {
	t.Helper()
	tokens := tokenize(expr)
	val, rest := evalTokens(t, tokens)
	if len(rest) != 0 {
		t.Fatalf("trailing tokens %v in %q", rest, expr)
	}
	return val
}

func tokenize(expr string) []string {
	expr = strings.ReplaceAll(expr, "(", " ( ")
	expr = strings.ReplaceAll(expr, ")", " ) ")
	return strings.Fields(expr)
}

func evalTokens(t *testing.T, tokens []string) (int, []string) {
	t.Helper()
	val, tokens := evalOperand(t, tokens)
	for len(tokens) > 0 && tokens[0] != ")" {
		op := tokens[0]
		var rhs int
		rhs, tokens = evalOperand(t, tokens[1:])
		switch op {
		case "+":
			val += rhs
		case "-":
			val -= rhs
		case "x":
			val *= rhs
		default:
			t.Fatalf("unknown operator %q", op)
		}
	}
	return val, tokens
}

func evalOperand(t *testing.T, tokens []string) (int, []string) {
	t.Helper()
	if len(tokens) == 0 {
		t.Fatal("missing operand")
	}
	if tokens[0] == "(" {
		val, rest := evalTokens(t, tokens[1:])
		if len(rest) == 0 || rest[0] != ")" {
			t.Fatal("unbalanced parentheses")
		}
		return val, rest[1:]
	}
	var n int
	if _, err := fmt.Sscanf(tokens[0], "%d", &n); err != nil {
		t.Fatalf("bad number %q", tokens[0])
	}
	return n, tokens[1:]
}

func TestArithmeticAnswerMatchesExpression(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, level := range []int{1, 3, 8, 15, 40} {
		for i := 0; i < 50; i++ {
			inst := NewArithmetic(level, rng)
			view := inst.Render(0)

			expr := strings.TrimSuffix(view.Prompt, " = ?")
			if expr == view.Prompt {
				t.Fatalf("prompt %q missing the = ? suffix", view.Prompt)
			}

			want := evalExpr(t, expr)
			if !inst.Check(want) {
				t.Fatalf("level %d: %q evaluates to %d but Check rejects it (answer %v)",
					level, expr, want, inst.CorrectAnswer())
			}
			if !inst.Check(fmt.Sprintf("%d", want)) {
				t.Errorf("string form of %d rejected", want)
			}
			if inst.Check(want + 1) {
				t.Errorf("off-by-one accepted for %q", expr)
			}
		}
	}
}

func TestArithmeticDeterministicUnderSeed(t *testing.T) {
	a := NewArithmetic(5, rand.New(rand.NewSource(7)))
	b := NewArithmetic(5, rand.New(rand.NewSource(7)))
	if a.Render(0).Prompt != b.Render(0).Prompt {
		t.Errorf("same seed produced different prompts:\n%q\n%q", a.Render(0).Prompt, b.Render(0).Prompt)
	}
	if a.CorrectAnswer() != b.CorrectAnswer() {
		t.Errorf("same seed produced different answers: %v vs %v", a.CorrectAnswer(), b.CorrectAnswer())
	}
}

func TestCompareAnswerIsLargerChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		inst := NewCompare(3, rng)
		view := inst.Render(0)

		if view.Input != challenge.InputChoice || len(view.Choices) != 2 {
			t.Fatalf("compare view = %+v", view)
		}

		vals := make([]int, 2)
		for j, c := range view.Choices {
			vals[j] = evalExpr(t, c)
		}
		if vals[0] == vals[1] {
			t.Fatalf("choices %v have equal values", view.Choices)
		}

		larger := view.Choices[0]
		if vals[1] > vals[0] {
			larger = view.Choices[1]
		}
		if !inst.Check(larger) {
			t.Errorf("larger choice %q rejected (answer %v)", larger, inst.CorrectAnswer())
		}
		smaller := view.Choices[0]
		if larger == view.Choices[0] {
			smaller = view.Choices[1]
		}
		if inst.Check(smaller) {
			t.Errorf("smaller choice %q accepted", smaller)
		}
	}
}

func TestMissingOperandCompletesEquation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		inst := NewMissing(4, rng)
		prompt := inst.Render(0).Prompt

		var a, b, want int
		if n, _ := fmt.Sscanf(prompt, "%d + ? = %d", &a, &b); n == 2 {
			want = b - a
		} else if n, _ := fmt.Sscanf(prompt, "? - %d = %d", &a, &b); n == 2 {
			want = b + a
		} else {
			t.Fatalf("unrecognized prompt %q", prompt)
		}

		if !inst.Check(want) {
			t.Errorf("%q: %d rejected (answer %v)", prompt, want, inst.CorrectAnswer())
		}
		if inst.Check(want + 1) {
			t.Errorf("%q: wrong operand accepted", prompt)
		}
	}
}

func TestRegistration(t *testing.T) {
	for _, id := range []string{"math.arithmetic", "math.compare", "math.missing"} {
		if _, err := challenge.Default.Get(id, 10); err != nil {
			t.Errorf("challenge %s not registered: %v", id, err)
		}
	}
}
