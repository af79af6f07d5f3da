package memory

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

func TestDigitsRevealThenHide(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := NewDigits(1, rng)

	shown := inst.Render(0)
	if shown.AcceptInput {
		t.Error("input accepted during the reveal phase")
	}
	if !strings.Contains(shown.Prompt, "Memorize") {
		t.Errorf("reveal prompt = %q", shown.Prompt)
	}

	hidden := inst.Render(time.Hour)
	if !hidden.AcceptInput {
		t.Error("input not accepted after the reveal phase")
	}

	// The answer must never leak into the recall prompt.
	answer := inst.CorrectAnswer().(string)
	if strings.Contains(hidden.Prompt, answer) {
		t.Errorf("recall prompt %q contains the answer", hidden.Prompt)
	}
}

func TestDigitsAnswerMatchesShownSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		inst := NewDigits(3, rng)

		prompt := inst.Render(0).Prompt
		_, line, ok := strings.Cut(prompt, "\n\n")
		if !ok {
			t.Fatalf("reveal prompt %q missing the digit line", prompt)
		}
		shown := strings.ReplaceAll(line, " ", "")

		if !inst.Check(shown) {
			t.Errorf("shown digits %q rejected (answer %v)", shown, inst.CorrectAnswer())
		}
		if inst.Check(shown + "0") {
			t.Errorf("extended digits accepted for %q", shown)
		}
	}
}

func TestDigitsPreserveLeadingZeros(t *testing.T) {
	// Walk seeds until a generated sequence starts with zero; grading must
	// treat the digits as a string, not a number.
	for seed := int64(0); seed < 200; seed++ {
		inst := NewDigits(1, rand.New(rand.NewSource(seed)))
		digits := inst.CorrectAnswer().(string)
		if digits[0] != '0' {
			continue
		}
		if !inst.Check(digits) {
			t.Fatalf("exact sequence %q rejected", digits)
		}
		if inst.Check(digits[1:]) {
			t.Fatalf("sequence %q accepted without its leading zero", digits)
		}
		return
	}
	t.Skip("no zero-leading sequence within 200 seeds")
}

func TestCellsOrderedGrading(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := NewCells(6, rng)

	order, ok := inst.CorrectAnswer().([]int)
	if !ok {
		t.Fatalf("answer %v is not []int", inst.CorrectAnswer())
	}
	if len(order) < 2 {
		t.Fatalf("flash order too short: %v", order)
	}

	seen := map[int]bool{}
	for _, cell := range order {
		if cell < 1 {
			t.Errorf("cell %d is not 1-based", cell)
		}
		if seen[cell] {
			t.Errorf("cell %d repeats in %v", cell, order)
		}
		seen[cell] = true
	}

	if !inst.Check(append([]int(nil), order...)) {
		t.Error("exact order rejected")
	}

	reversed := make([]int, len(order))
	for i, c := range order {
		reversed[len(order)-1-i] = c
	}
	if inst.Check(reversed) {
		t.Error("reversed order accepted")
	}
}

func TestCellsTextCoercion(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := NewCells(6, rng).(*Cells)
	order := inst.CorrectAnswer().([]int)

	parts := make([]string, len(order))
	for i, c := range order {
		parts[i] = strconv.Itoa(c)
	}

	if !inst.Check(strings.Join(parts, " ")) {
		t.Error("space-separated text rejected")
	}
	if !inst.Check(strings.Join(parts, ",")) {
		t.Error("comma-separated text rejected")
	}
	if inst.Check("not numbers") {
		t.Error("non-numeric text accepted")
	}
}

func TestCellsRevealMarksFlashOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := NewCells(6, rng)

	shown := inst.Render(0)
	if shown.AcceptInput {
		t.Error("input accepted during the reveal phase")
	}
	order := inst.CorrectAnswer().([]int)
	for pos := 1; pos <= len(order); pos++ {
		if !strings.Contains(shown.Prompt, fmt.Sprintf("[*%d]", pos)) {
			t.Errorf("reveal grid missing flash position %d:\n%s", pos, shown.Prompt)
		}
	}

	hidden := inst.Render(time.Hour)
	if !hidden.AcceptInput {
		t.Error("input not accepted after the reveal phase")
	}
	if strings.Contains(hidden.Prompt, "[*") {
		t.Errorf("recall grid still marks the flash cells:\n%s", hidden.Prompt)
	}
}

func TestWordsAskedPositionMatchesAnswer(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		inst := NewWords(3, rng)

		reveal := inst.Render(0)
		if reveal.AcceptInput {
			t.Fatal("input accepted during the reveal phase")
		}
		_, list, ok := strings.Cut(reveal.Prompt, "\n\n")
		if !ok {
			t.Fatalf("reveal prompt %q missing the word list", reveal.Prompt)
		}
		words := strings.Fields(list)

		recall := inst.Render(time.Hour)
		var pos int
		if _, err := fmt.Sscanf(recall.Prompt, "What was word number %d?", &pos); err != nil {
			t.Fatalf("unrecognized recall prompt %q", recall.Prompt)
		}
		if pos < 1 || pos > len(words) {
			t.Fatalf("asked position %d outside the %d shown words", pos, len(words))
		}

		if !inst.Check(words[pos-1]) {
			t.Errorf("word %q at position %d rejected (answer %v)", words[pos-1], pos, inst.CorrectAnswer())
		}
		if !inst.Check(strings.ToUpper(words[pos-1])) {
			t.Errorf("uppercased word rejected")
		}
	}
}

func TestWordsAreDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inst := NewWords(10, rng).(*Words)

	seen := map[string]bool{}
	for _, w := range inst.words {
		if seen[w] {
			t.Errorf("word %q repeats in the list", w)
		}
		seen[w] = true
	}
}

func TestRegistration(t *testing.T) {
	for _, id := range []string{"memory.digits", "memory.cells", "memory.words"} {
		if _, err := challenge.Default.Get(id, 10); err != nil {
			t.Errorf("challenge %s not registered: %v", id, err)
		}
	}
}
