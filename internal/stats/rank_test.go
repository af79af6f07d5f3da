package stats

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Novice"},
		{9, "Novice"},
		{10, "Apprentice"},
		{19, "Apprentice"},
		{20, "Thinker"},
		{34, "Thinker"},
		{35, "Scholar"},
		{59, "Scholar"},
		{60, "Mastermind"},
		{99, "Mastermind"},
		{100, "Genius"},
		{500, "Genius"},
	}

	for _, tt := range tests {
		if got := RankFor(tt.score); got != tt.want {
			t.Errorf("RankFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
