package grid

import (
	"testing"

	"logicgrid-api/internal/core"
)

func testCategories() []core.Category {
	return []core.Category{
		{ID: "color", Kind: core.KindNominal, Values: []core.Value{"red", "blue", "green"}},
		{ID: "house", Kind: core.KindOrdinal, Values: []core.Value{1.0, 2.0, 3.0}},
		{ID: "pet", Kind: core.KindNominal, Values: []core.Value{"cat", "dog", "bird"}},
	}
}

func TestNewGrid_RejectsTooFewCategories(t *testing.T) {
	_, err := NewGrid(testCategories()[:1])
	if err == nil {
		t.Fatal("expected an error with fewer than two categories")
	}
}

func TestNewGrid_RejectsMismatchedSize(t *testing.T) {
	cats := testCategories()
	cats[1].Values = []core.Value{1.0, 2.0}
	if _, err := NewGrid(cats); err == nil {
		t.Fatal("expected an error when category sizes mismatch")
	}
}

func TestNewGrid_RejectsDuplicateValues(t *testing.T) {
	cats := testCategories()
	cats[0].Values = []core.Value{"red", "red", "green"}
	if _, err := NewGrid(cats); err == nil {
		t.Fatal("expected an error on duplicate values")
	}
}

func TestNewGrid_RejectsUnsortedOrdinal(t *testing.T) {
	cats := testCategories()
	cats[1].Values = []core.Value{2.0, 1.0, 3.0}
	if _, err := NewGrid(cats); err == nil {
		t.Fatal("expected an error on an unsorted ORDINAL category")
	}
}

func TestNewGrid_AllPossibleInitially(t *testing.T) {
	g, err := NewGrid(testCategories())
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.RowCount("color", "red", "house") != 3 {
		t.Errorf("expected 3 possibilities initially, got %d", g.RowCount("color", "red", "house"))
	}
	if g.IsSolved() {
		t.Error("a fresh grid should not be solved")
	}
}

func TestGrid_SetIsSymmetric(t *testing.T) {
	g, _ := NewGrid(testCategories())
	changed := g.Set("color", "red", "house", 1.0, false)
	if !changed {
		t.Fatal("expected Set to report a change")
	}
	if g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected the forward direction to be eliminated")
	}
	if g.IsPossible("house", 1.0, "color", "red") {
		t.Error("expected the reverse direction to be eliminated symmetrically")
	}
}

func TestGrid_SetTrueDoesNotCollapseRow(t *testing.T) {
	g, _ := NewGrid(testCategories())
	g.Set("color", "red", "house", 1.0, true)
	// Set touches only the named cell; eliminating the rest of the row is the solver's job.
	if g.RowCount("color", "red", "house") != 3 {
		t.Errorf("expected row to keep all 3 candidates, got %d", g.RowCount("color", "red", "house"))
	}
	if !g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected the asserted pairing to remain possible")
	}
}

func TestGrid_SetIdentityDiagonalIsNoop(t *testing.T) {
	g, _ := NewGrid(testCategories())
	if g.Set("color", "red", "color", "blue", false) {
		t.Error("expected Set on the identity diagonal to be a no-op")
	}
}

func TestGrid_SetUnknownCoordinateIsNoop(t *testing.T) {
	g, _ := NewGrid(testCategories())
	if g.Set("color", "purple", "house", 1.0, false) {
		t.Error("expected Set with an unknown value to be a no-op")
	}
}

func TestGrid_IsPossibleRespectsIdentity(t *testing.T) {
	g, _ := NewGrid(testCategories())
	if !g.IsPossible("color", "red", "color", "red") {
		t.Error("expected a category queried against itself with the same value to be possible")
	}
	if g.IsPossible("color", "red", "color", "blue") {
		t.Error("expected a category queried against itself with a different value to be impossible")
	}
}

func TestGrid_Clone(t *testing.T) {
	g, _ := NewGrid(testCategories())
	clone := g.Clone()
	clone.Set("color", "red", "house", 1.0, false)
	if !g.IsPossible("color", "red", "house", 1.0) {
		t.Error("mutating a clone should not affect the original")
	}
	if clone.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected the clone's own mutation to stick")
	}
}

func TestGrid_StatsAndIsSolved(t *testing.T) {
	g, _ := NewGrid(testCategories())
	stats := g.Stats()
	if stats.Solution != 3*3 { // K * (C choose 2) = 3 * 3
		t.Errorf("expected solution count 9, got %d", stats.Solution)
	}
	if stats.Current != stats.Total {
		t.Errorf("expected current == total on a fresh grid, got %d != %d", stats.Current, stats.Total)
	}

	// Fully pin every pairing consistent with color[i]<->house[i]<->pet[i] by eliminating every
	// other pairing.
	colors := []core.Value{"red", "blue", "green"}
	houses := []core.Value{1.0, 2.0, 3.0}
	pets := []core.Value{"cat", "dog", "bird"}
	for i := range colors {
		for j := range colors {
			if i == j {
				continue
			}
			g.Set("color", colors[i], "house", houses[j], false)
			g.Set("color", colors[i], "pet", pets[j], false)
			g.Set("house", houses[i], "pet", pets[j], false)
		}
	}
	if !g.IsSolved() {
		t.Error("expected the grid to be solved after pinning every entity")
	}
}

func TestGrid_ValueAtRankAndRankIndex(t *testing.T) {
	g, _ := NewGrid(testCategories())
	v, ok := g.ValueAtRank("house", 1)
	if !ok || v != 2.0 {
		t.Errorf("expected rank 1 of house to be 2.0, got %v (%v)", v, ok)
	}
	idx, ok := g.RankIndex("house", 3.0)
	if !ok || idx != 2 {
		t.Errorf("expected rank index of 3.0 to be 2, got %d (%v)", idx, ok)
	}
}

func TestGrid_CategoryKind(t *testing.T) {
	g, _ := NewGrid(testCategories())
	kind, ok := g.CategoryKind("house")
	if !ok || kind != core.KindOrdinal {
		t.Errorf("expected house to be ORDINAL, got %v (%v)", kind, ok)
	}
	if _, ok := g.CategoryKind("nonexistent"); ok {
		t.Error("expected an unknown category to report not-found")
	}
}
