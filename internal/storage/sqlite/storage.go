package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mcoot/royalsquare/internal/model"
	"github.com/mcoot/royalsquare/internal/storage"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS game_summaries (
		id TEXT PRIMARY KEY,
		score_one INTEGER NOT NULL,
		score_two INTEGER NOT NULL,
		winner INTEGER NOT NULL,
		end_reason TEXT NOT NULL,
		completed_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_summaries_completed ON game_summaries(completed_at);`,
	`CREATE TABLE IF NOT EXISTS dictionary_words (
		word TEXT PRIMARY KEY
	);`,
	`CREATE TABLE IF NOT EXISTS dictionary_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		loaded_at TIMESTAMP NOT NULL
	);`,
}

// Storage is a SQLite-backed implementation of the storage interface
type Storage struct {
	db *sql.DB
}

// New opens (or creates) the database and applies the schema
func New(cfg Config) (*Storage, error) {
	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer keeps the single-file database free of lock contention
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		fmt.Sprintf("PRAGMA busy_timeout=%d;", cfg.BusyTimeout.Milliseconds()),
	}
	for _, p := range append(pragmas, schema...) {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("prepare database: %w", err)
		}
	}

	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := storage.EncodeGame(game)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO games (id, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(game.ID), string(data), game.UpdatedAt.UTC(),
	)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM games WHERE id = ?`, string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	return storage.DecodeGame([]byte(data))
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, string(id))
	return err
}

// Summary operations

func (s *Storage) SaveGameSummary(ctx context.Context, summary *model.GameSummary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO game_summaries (id, score_one, score_two, winner, end_reason, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(summary.ID), summary.Scores[0], summary.Scores[1], summary.Winner,
		string(summary.EndReason), summary.CompletedAt.UTC(),
	)
	return err
}

func (s *Storage) ListGameSummaries(ctx context.Context) ([]model.GameSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, score_one, score_two, winner, end_reason, completed_at
		 FROM game_summaries ORDER BY completed_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	summaries := []model.GameSummary{}
	for rows.Next() {
		var (
			summary     model.GameSummary
			id, reason  string
			completedAt time.Time
		)
		if err := rows.Scan(&id, &summary.Scores[0], &summary.Scores[1], &summary.Winner, &reason, &completedAt); err != nil {
			return nil, err
		}
		summary.ID = model.GameID(id)
		summary.EndReason = model.EndReason(reason)
		summary.CompletedAt = completedAt
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	// An empty word list that was saved on purpose is still "loaded"
	var loaded int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM dictionary_meta`).Scan(&loaded); err != nil {
		return nil, err
	}
	if loaded == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM dictionary_words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dictionary_words`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO dictionary_words (word) VALUES (?)`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO dictionary_meta (id, loaded_at) VALUES (1, ?)`, time.Now().UTC(),
	); err != nil {
		return err
	}

	return tx.Commit()
}
