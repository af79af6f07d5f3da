package stats

// rankTier maps a high-score threshold to a display rank.
type rankTier struct {
	minScore int
	name     string
}

// Tiers are checked highest-first; the first threshold the high score
// reaches wins.
var rankTiers = []rankTier{
	{100, "Genius"},
	{60, "Mastermind"},
	{35, "Scholar"},
	{20, "Thinker"},
	{10, "Apprentice"},
	{0, "Novice"},
}

// RankFor returns the display rank for a high score.
func RankFor(highScore int) string {
	for _, t := range rankTiers {
		if highScore >= t.minScore {
			return t.name
		}
	}
	return "Novice"
}
