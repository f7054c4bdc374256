// Package storage provides SQLite-based persistence for saved rounds and
// finished-game history.
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

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Outcome describes how a recorded game ended.
type Outcome string

const (
	OutcomeGameOver  Outcome = "game_over"
	OutcomeAbandoned Outcome = "abandoned"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game in the history table.
type GameRecord struct {
	ID        int64
	Profile   string
	Score     int
	MaxRank   int
	Moves     int
	Won       bool
	Outcome   Outcome
	CreatedAt time.Time
}

// MaxTile returns the displayed value of the highest tile.
func (r GameRecord) MaxTile() int {
	return t2048.Number(r.MaxRank)
}

// Stats contains aggregated statistics for a profile.
type Stats struct {
	Profile    string
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
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

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			profile TEXT PRIMARY KEY,
			snapshot BLOB NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			best INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			max_rank INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_rank INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_profile ON games(profile);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(profile, score DESC);
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

// SaveState writes the round snapshot for profile, replacing any earlier one.
func (s *Store) SaveState(profile string, snap t2048.Snapshot) error {
	blob, err := snap.MarshalBinary()
	if err != nil {
		return fmt.Errorf("storage: cannot encode snapshot: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (profile, snapshot, score, best, moves, max_rank, won, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			snapshot = excluded.snapshot,
			score = excluded.score,
			best = excluded.best,
			moves = excluded.moves,
			max_rank = excluded.max_rank,
			won = excluded.won,
			updated_at = excluded.updated_at`,
		profile, blob, snap.Score, snap.Best, snap.Moves, snap.MaxRank, snap.Won,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save state: %w", err)
	}
	return nil
}

// LoadState reads the saved snapshot for profile.
// It returns t2048.ErrNoSave when the profile has none and an error wrapping
// t2048.ErrCorruptSave when the stored blob cannot be decoded.
func (s *Store) LoadState(profile string) (t2048.Snapshot, error) {
	var snap t2048.Snapshot
	var blob []byte

	err := s.db.QueryRow("SELECT snapshot FROM saves WHERE profile = ?", profile).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return snap, t2048.ErrNoSave
	}
	if err != nil {
		return snap, fmt.Errorf("storage: cannot load state: %w", err)
	}

	if err := snap.UnmarshalBinary(blob); err != nil {
		return t2048.Snapshot{}, fmt.Errorf("storage: profile %q: %w", profile, err)
	}
	return snap, nil
}

// DeleteSave removes the saved round for profile. The history is kept.
func (s *Store) DeleteSave(profile string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save: %w", err)
	}
	return nil
}

// RecordGame appends a finished game to the history.
// Returns the ID of the inserted record.
func (s *Store) RecordGame(rec GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (profile, score, max_rank, moves, won, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Profile, rec.Score, rec.MaxRank, rec.Moves, rec.Won, string(rec.Outcome),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games for profile, ordered by score.
func (s *Store) TopGames(profile string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, profile, score, max_rank, moves, won, outcome, created_at
		 FROM games
		 WHERE profile = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		profile, limit,
	)
}

// RecentGames retrieves the most recent N games for profile.
func (s *Store) RecentGames(profile string, limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryGames(
		`SELECT id, profile, score, max_rank, moves, won, outcome, created_at
		 FROM games
		 WHERE profile = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		profile, limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Profile, &r.Score, &r.MaxRank, &r.Moves, &r.Won, &outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestScore returns the best score ever reached by profile, from either the
// saved round or the history. Returns 0 if nothing was played.
func (s *Store) BestScore(profile string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(v) FROM (
			SELECT best AS v FROM saves WHERE profile = ?
			UNION ALL
			SELECT score AS v FROM games WHERE profile = ?
		)`,
		profile, profile,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats retrieves aggregated history statistics for profile.
func (s *Store) Stats(profile string) (*Stats, error) {
	stats := &Stats{Profile: profile}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM games WHERE profile = ?`,
		profile,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearHistory deletes all finished games for profile.
func (s *Store) ClearHistory(profile string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
