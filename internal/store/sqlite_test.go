package store

import (
	"context"
	"testing"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := s.Migrate(context.Background()); err != nil {
		s.Close()
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPuzzle() core.Puzzle {
	return core.Puzzle{
		Categories: []core.Category{
			{ID: "color", Kind: core.KindNominal, Values: []core.Value{"red", "blue"}},
			{ID: "house", Kind: core.KindOrdinal, Values: []core.Value{1, 2}},
		},
		Clues: []clue.Clue{
			clue.Binary(clue.OpIS, clue.ItemRef{Category: "color", Value: "red"}, clue.ItemRef{Category: "house", Value: 1}),
		},
		Target: core.TargetFact{Category1: "color", Value1: "red", Category2: "house"},
	}
}

func TestPuzzleRepository_StoreAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := &Record{Puzzle: testPuzzle()}
	if err := s.Puzzles().Store(ctx, rec); err != nil {
		t.Fatalf("store: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected an assigned ID")
	}

	got, err := s.Puzzles().Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Puzzle.Clues) != 1 {
		t.Errorf("expected 1 clue, got %d", len(got.Puzzle.Clues))
	}
	if got.Puzzle.Target.Category1 != "color" {
		t.Errorf("unexpected target: %+v", got.Puzzle.Target)
	}
}

func TestPuzzleRepository_GetNotFound(t *testing.T) {
	s := setupTestStore(t)
	if _, err := s.Puzzles().Get(context.Background(), "missing"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPuzzleRepository_List(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := &Record{Puzzle: testPuzzle()}
		if err := s.Puzzles().Store(ctx, rec); err != nil {
			t.Fatalf("store: %v", err)
		}
	}

	summaries, err := s.Puzzles().List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 3 {
		t.Errorf("expected 3 summaries, got %d", len(summaries))
	}
	for _, sum := range summaries {
		if sum.ClueCount != 1 {
			t.Errorf("expected clue count 1, got %d", sum.ClueCount)
		}
		if len(sum.Categories) != 2 {
			t.Errorf("expected 2 categories, got %d", len(sum.Categories))
		}
	}
}

func TestPuzzleRepository_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := &Record{Puzzle: testPuzzle()}
	if err := s.Puzzles().Store(ctx, rec); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := s.Puzzles().Delete(ctx, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Puzzles().Get(ctx, rec.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
