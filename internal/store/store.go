// Package store provides persistence for generated puzzles.
package store

import (
	"context"
	"errors"
	"time"

	"logicgrid-api/internal/core"
)

// ErrNotFound is returned when a record is not found.
var ErrNotFound = errors.New("record not found")

// Record pairs a generated puzzle with its storage metadata.
type Record struct {
	ID        string      `json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Puzzle    core.Puzzle `json:"puzzle"`
}

// Summary is the lightweight listing projection of a Record.
type Summary struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	ClueCount  int       `json:"clue_count"`
	Categories []string  `json:"categories"`
}

// Filter restricts List results.
type Filter struct {
	Limit  int
	Offset int
}

// PuzzleRepository persists and retrieves generated puzzles.
type PuzzleRepository interface {
	// Store saves a puzzle, assigning it an ID if it does not already have one.
	Store(ctx context.Context, r *Record) error

	// Get retrieves a puzzle by ID.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns puzzle summaries ordered newest-first.
	List(ctx context.Context, filter Filter) ([]*Summary, error)

	// Delete removes a puzzle by ID.
	Delete(ctx context.Context, id string) error
}

// Store combines the repository with lifecycle management.
type Store interface {
	Puzzles() PuzzleRepository
	Migrate(ctx context.Context) error
	Close() error
}
