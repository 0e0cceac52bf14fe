// Package storage provides SQLite-based persistence for finished games:
// final scores and the words cleared along the way.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/brickwords/internal/core"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	RunID     string
	GameID    string
	Score     int
	CreatedAt time.Time
}

// WordEntry is one distinct cleared word with its best score.
type WordEntry struct {
	Word      string
	BestScore int
	Times     int
}

// GameRecord is everything stored for one finished game.
type GameRecord struct {
	RunID  string
	GameID string
	Score  int
	Words  []core.WordRecord
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL DEFAULT '',
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS cleared_words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			word TEXT NOT NULL,
			length INTEGER NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_cleared_words_game ON cleared_words(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_cleared_words_run ON cleared_words(run_id);
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

// parseTimestamp converts a DATETIME column, which the driver returns either
// as time.Time or as text, into a time.Time.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	return s.insertScore(s.db, "", gameID, score)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) insertScore(ex execer, runID, gameID string, score int) (int64, error) {
	result, err := ex.Exec(
		"INSERT INTO scores (run_id, game_id, score) VALUES (?, ?, ?)",
		runID, gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveWords records the words cleared during one run.
func (s *Store) SaveWords(gameID, runID string, words []core.WordRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	if err := insertWords(tx, gameID, runID, words); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit words: %w", err)
	}
	return nil
}

func insertWords(ex execer, gameID, runID string, words []core.WordRecord) error {
	for _, w := range words {
		if _, err := ex.Exec(
			"INSERT INTO cleared_words (run_id, game_id, word, length, score) VALUES (?, ?, ?, ?, ?)",
			runID, gameID, w.Word, len(w.Word), w.Score,
		); err != nil {
			return fmt.Errorf("storage: cannot save word %s: %w", w.Word, err)
		}
	}
	return nil
}

// SaveGame stores the final score and cleared words of a run atomically.
// Returns the ID of the score record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.RunID == "" {
		return 0, errors.New("storage: run ID is required")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	id, err := s.insertScore(tx, rec.RunID, rec.GameID, rec.Score)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := insertWords(tx, rec.GameID, rec.RunID, rec.Words); err != nil {
		tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit game: %w", err)
	}
	return id, nil
}

func (s *Store) queryScores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryScores(
		`SELECT id, run_id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.queryScores(
		`SELECT id, run_id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// TopWords returns the best distinct words cleared in the given game,
// highest score first, then most often cleared, then alphabetical.
func (s *Store) TopWords(gameID string, limit int) ([]WordEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT word, MAX(score) AS best, COUNT(*) AS times
		 FROM cleared_words
		 WHERE game_id = ?
		 GROUP BY word
		 ORDER BY best DESC, times DESC, word ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var entries []WordEntry
	for rows.Next() {
		var e WordEntry
		if err := rows.Scan(&e.Word, &e.BestScore, &e.Times); err != nil {
			return nil, fmt.Errorf("storage: cannot scan word row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RunWords returns the words cleared during one run, in the order they
// were stored.
func (s *Store) RunWords(runID string) ([]core.WordRecord, error) {
	rows, err := s.db.Query(
		"SELECT word, score FROM cleared_words WHERE run_id = ? ORDER BY id ASC",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run words: %w", err)
	}
	defer rows.Close()

	var words []core.WordRecord
	for rows.Next() {
		var w core.WordRecord
		if err := rows.Scan(&w.Word, &w.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan word row: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return words, nil
}

// ClearScores deletes all scores and cleared words for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM cleared_words WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID       string
	GamesCount   int
	HighScore    int
	AvgScore     float64
	TotalScore   int64
	WordsCleared int
	LongestWord  string
	LastPlayed   time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var longest sql.NullString
	err = s.db.QueryRow(
		`SELECT COUNT(*),
		        (SELECT word FROM cleared_words WHERE game_id = ? ORDER BY length DESC, score DESC, word ASC LIMIT 1)
		 FROM cleared_words WHERE game_id = ?`,
		gameID, gameID,
	).Scan(&stats.WordsCleared, &longest)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get word stats: %w", err)
	}
	stats.LongestWord = longest.String

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves score statistics for all games that have been
// played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTimestamp(lastPlayed)
		stats[gs.GameID] = &gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
