package engine

import (
	"time"

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
)

// CategoryStat counts attempts and correct answers for one category within
// a single game.
type CategoryStat struct {
	Correct  int
	Attempts int
}

// Summary is the end-of-game aggregate handed to the stats recorder.
type Summary struct {
	Score           int
	CorrectAnswers  int
	WrongAnswers    int
	TotalChallenges int
	Duration        time.Duration
	Categories      map[challenge.Category]CategoryStat
}

// Result is what the stats recorder returns after persisting a game.
// The engine treats it as authoritative for high-score and rank display.
type Result struct {
	HighScore    int
	NewHighScore bool
	Rank         string
	GamesPlayed  int
}

// StatsRecorder persists end-of-game aggregates. Implementations must
// tolerate being called once per ended game. The engine tolerates a nil
// recorder (scores are simply not persisted) and logs recorder errors
// rather than failing the game-over transition.
type StatsRecorder interface {
	RecordGame(s Summary) (Result, error)
}
