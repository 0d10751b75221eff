package leaderboard

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/Lexicon1971/starbuck-trader-game/internal/database"
)

const schema = `
CREATE TABLE IF NOT EXISTS high_scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    score REAL NOT NULL,
    date TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_high_scores_score ON high_scores(score DESC);
`

// SQLiteStore is the Store implementation backed by the game database.
type SQLiteStore struct {
	db  *database.DB
	log zerolog.Logger
}

// NewSQLiteStore creates the store and applies its schema.
func NewSQLiteStore(db *database.DB, log zerolog.Logger) (*SQLiteStore, error) {
	if err := db.Migrate(schema); err != nil {
		return nil, fmt.Errorf("failed to migrate leaderboard schema: %w", err)
	}
	return &SQLiteStore{
		db:  db,
		log: log.With().Str("component", "leaderboard").Logger(),
	}, nil
}

// Load returns the board sorted descending, or the arcade seed list when
// no score has been recorded yet.
func (s *SQLiteStore) Load() ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT name, score, date FROM high_scores ORDER BY score DESC LIMIT ?", MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to load high scores: %w", err)
	}
	defer rows.Close()

	var board []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan high score row: %w", err)
		}
		board = append(board, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read high scores: %w", err)
	}

	if len(board) == 0 {
		seed := make([]Entry, len(SeedEntries))
		copy(seed, SeedEntries)
		return seed, nil
	}
	return board, nil
}

// Save records a score and returns the updated board. Rows that fall off
// the top ten are deleted.
func (s *SQLiteStore) Save(e Entry) ([]Entry, error) {
	if _, err := s.db.Exec(
		"INSERT INTO high_scores (name, score, date) VALUES (?, ?, ?)",
		e.Name, e.Score, e.Date); err != nil {
		return nil, fmt.Errorf("failed to save high score: %w", err)
	}

	if _, err := s.db.Exec(`
		DELETE FROM high_scores WHERE id NOT IN (
		    SELECT id FROM high_scores ORDER BY score DESC LIMIT ?
		)`, MaxEntries); err != nil {
		return nil, fmt.Errorf("failed to trim high scores: %w", err)
	}

	s.log.Info().Str("name", e.Name).Float64("score", e.Score).Msg("high score recorded")

	board, err := s.Load()
	if err != nil {
		return nil, err
	}
	sort.Slice(board, func(i, j int) bool { return board[i].Score > board[j].Score })
	return board, nil
}
