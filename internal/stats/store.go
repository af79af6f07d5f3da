// Package stats provides SQLite-based persistence for game results and
// derives the player's rank from their high score. Uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
package stats

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-braintrain/internal/challenge"
	"github.com/vovakirdan/tui-braintrain/internal/engine"
)

// Store manages the SQLite database connection for result persistence.
// It implements engine.StatsRecorder.
type Store struct {
	db *sql.DB
}

// GameEntry represents one persisted game result.
type GameEntry struct {
	ID              int64
	Score           int
	CorrectAnswers  int
	WrongAnswers    int
	TotalChallenges int
	Duration        time.Duration
	CreatedAt       time.Time
}

// CategoryTotal aggregates a category across all recorded games.
type CategoryTotal struct {
	Category challenge.Category
	Correct  int
	Attempts int
}

// Totals aggregates the whole play history.
type Totals struct {
	GamesPlayed     int
	HighScore       int
	AvgScore        float64
	TotalCorrect    int
	TotalChallenges int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("stats: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("stats: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("stats: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("stats: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			wrong_answers INTEGER NOT NULL,
			total_challenges INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);

		CREATE TABLE IF NOT EXISTS game_categories (
			game_id INTEGER NOT NULL REFERENCES games(id),
			category TEXT NOT NULL,
			correct INTEGER NOT NULL,
			attempts INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_game_categories_game ON game_categories(game_id);
		CREATE INDEX IF NOT EXISTS idx_game_categories_category ON game_categories(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordGame persists one ended game and returns the authoritative
// high-score/rank aggregate. Implements engine.StatsRecorder.
func (s *Store) RecordGame(sum engine.Summary) (engine.Result, error) {
	prevHigh, err := s.HighScore()
	if err != nil {
		return engine.Result{}, err
	}

	res, err := s.db.Exec(
		`INSERT INTO games (score, correct_answers, wrong_answers, total_challenges, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		sum.Score, sum.CorrectAnswers, sum.WrongAnswers, sum.TotalChallenges,
		int(sum.Duration.Seconds()),
	)
	if err != nil {
		return engine.Result{}, fmt.Errorf("stats: cannot save game: %w", err)
	}

	gameID, err := res.LastInsertId()
	if err != nil {
		return engine.Result{}, fmt.Errorf("stats: cannot get inserted ID: %w", err)
	}

	for cat, cs := range sum.Categories {
		if cs.Attempts == 0 {
			continue
		}
		if _, err := s.db.Exec(
			`INSERT INTO game_categories (game_id, category, correct, attempts) VALUES (?, ?, ?, ?)`,
			gameID, string(cat), cs.Correct, cs.Attempts,
		); err != nil {
			return engine.Result{}, fmt.Errorf("stats: cannot save category stats: %w", err)
		}
	}

	high := prevHigh
	if sum.Score > high {
		high = sum.Score
	}

	games, err := s.gamesCount()
	if err != nil {
		return engine.Result{}, err
	}

	return engine.Result{
		HighScore:    high,
		NewHighScore: sum.Score > prevHigh,
		Rank:         RankFor(high),
		GamesPlayed:  games,
	}, nil
}

// HighScore returns the highest recorded score, or 0 when no games exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("stats: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

func (s *Store) gamesCount() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM games").Scan(&n); err != nil {
		return 0, fmt.Errorf("stats: cannot count games: %w", err)
	}
	return n, nil
}

// TopScores retrieves the best N games, ordered by score descending.
func (s *Store) TopScores(limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, correct_answers, wrong_answers, total_challenges, duration_secs, created_at
		 FROM games
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		var e GameEntry
		var durationSecs int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.CorrectAnswers, &e.WrongAnswers,
			&e.TotalChallenges, &durationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("stats: cannot scan row: %w", err)
		}
		e.Duration = time.Duration(durationSecs) * time.Second
		e.CreatedAt = parseCreatedAt(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: row iteration error: %w", err)
	}

	return entries, nil
}

// CategoryTotals aggregates correct/attempts per category across all games.
func (s *Store) CategoryTotals() ([]CategoryTotal, error) {
	rows, err := s.db.Query(
		`SELECT category, SUM(correct), SUM(attempts)
		 FROM game_categories
		 GROUP BY category
		 ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("stats: cannot query category totals: %w", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var t CategoryTotal
		var cat string
		if err := rows.Scan(&cat, &t.Correct, &t.Attempts); err != nil {
			return nil, fmt.Errorf("stats: cannot scan row: %w", err)
		}
		t.Category = challenge.Category(cat)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stats: row iteration error: %w", err)
	}

	return totals, nil
}

// AllTotals aggregates the whole play history.
func (s *Store) AllTotals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(correct_answers), 0), COALESCE(SUM(total_challenges), 0)
		 FROM games`,
	).Scan(&t.GamesPlayed, &t.HighScore, &t.AvgScore, &t.TotalCorrect, &t.TotalChallenges)
	if err != nil {
		return t, fmt.Errorf("stats: cannot query totals: %w", err)
	}
	return t, nil
}

// parseCreatedAt handles both time.Time and string datetime columns.
func parseCreatedAt(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", val); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements the engine's recorder contract.
var _ engine.StatsRecorder = (*Store)(nil)
