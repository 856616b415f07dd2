package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	puzzles *sqlitePuzzleRepo
}

// NewSQLiteStore opens a SQLite store. Use ":memory:" for an ephemeral database, or a file path
// for persistent storage.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if !strings.Contains(dsn, ":memory:") {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	s := &SQLiteStore{db: db}
	s.puzzles = &sqlitePuzzleRepo{db: db}
	return s, nil
}

// Puzzles returns the puzzle repository.
func (s *SQLiteStore) Puzzles() PuzzleRepository {
	return s.puzzles
}

// Migrate runs database migrations.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	upSQL, err := migrationsFS.ReadFile("migrations/001_initial.up.sql")
	if err != nil {
		return fmt.Errorf("failed to read migration: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, string(upSQL)); err != nil {
		return fmt.Errorf("failed to run migration: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqlitePuzzleRepo struct {
	db *sql.DB
}

func (r *sqlitePuzzleRepo) Store(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(rec.Puzzle)
	if err != nil {
		return fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	catIDs := make([]string, len(rec.Puzzle.Categories))
	for i, c := range rec.Puzzle.Categories {
		catIDs[i] = c.ID
	}
	categories, err := json.Marshal(catIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO puzzles (id, clue_count, categories, payload, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			clue_count = excluded.clue_count,
			categories = excluded.categories,
			payload = excluded.payload
	`, rec.ID, len(rec.Puzzle.Clues), string(categories), payload, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store puzzle: %w", err)
	}
	return nil
}

func (r *sqlitePuzzleRepo) Get(ctx context.Context, id string) (*Record, error) {
	var payload []byte
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, `SELECT payload, created_at FROM puzzles WHERE id = ?`, id).
		Scan(&payload, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get puzzle: %w", err)
	}

	rec := &Record{ID: id, CreatedAt: createdAt}
	if err := json.Unmarshal(payload, &rec.Puzzle); err != nil {
		return nil, fmt.Errorf("failed to unmarshal puzzle: %w", err)
	}
	return rec, nil
}

func (r *sqlitePuzzleRepo) List(ctx context.Context, filter Filter) ([]*Summary, error) {
	query := `SELECT id, clue_count, categories, created_at FROM puzzles ORDER BY created_at DESC`
	args := []interface{}{}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list puzzles: %w", err)
	}
	defer rows.Close()

	var out []*Summary
	for rows.Next() {
		var s Summary
		var categories string
		if err := rows.Scan(&s.ID, &s.ClueCount, &categories, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan puzzle: %w", err)
		}
		if err := json.Unmarshal([]byte(categories), &s.Categories); err != nil {
			return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *sqlitePuzzleRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM puzzles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete puzzle: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
