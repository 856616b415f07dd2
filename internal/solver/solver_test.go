package solver

import (
	"testing"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

func testCategories() []core.Category {
	return []core.Category{
		{ID: "color", Kind: core.KindNominal, Values: []core.Value{"red", "blue", "green"}},
		{ID: "house", Kind: core.KindOrdinal, Values: []core.Value{1.0, 2.0, 3.0}},
		{ID: "pet", Kind: core.KindNominal, Values: []core.Value{"cat", "dog", "bird"}},
	}
}

func ref(cat string, v core.Value) clue.ItemRef {
	return clue.ItemRef{Category: cat, Value: v}
}

// A fully determined 3x3 solution: red<->1<->cat, blue<->2<->dog, green<->3<->bird. Two
// Binary-IS clues between color and house, plus two between house and pet, should be enough for
// uniqueness/transitivity to finish the grid.
func TestSolver_ApplyAll_SolvesViaTransitivity(t *testing.T) {
	g, err := grid.NewGrid(testCategories())
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	s := NewSolver()

	clues := []clue.Clue{
		clue.Binary(clue.OpIS, ref("color", "red"), ref("house", 1.0)),
		clue.Binary(clue.OpIS, ref("color", "blue"), ref("house", 2.0)),
		clue.Binary(clue.OpIS, ref("house", 1.0), ref("pet", "cat")),
		clue.Binary(clue.OpIS, ref("house", 2.0), ref("pet", "dog")),
	}
	s.ApplyAll(g, clues)

	if !g.IsSolved() {
		t.Fatal("expected the grid to be fully solved by transitivity")
	}
	if !g.IsPossible("color", "green", "pet", "bird") {
		t.Error("expected the unassigned entity to be derived: green<->bird")
	}
}

func TestSolver_Apply_BinaryIsNot(t *testing.T) {
	g, _ := grid.NewGrid(testCategories())
	s := NewSolver()
	d := s.Apply(g, clue.Binary(clue.OpISNOT, ref("color", "red"), ref("house", 1.0)))
	if d == 0 {
		t.Error("expected at least one deduction from a Binary IS_NOT clue")
	}
	if g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected the negated pairing to be eliminated")
	}
}

func TestSolver_Apply_Ordinal(t *testing.T) {
	g, _ := grid.NewGrid(testCategories())
	s := NewSolver()
	// red is ranked strictly greater than blue in house.
	s.Apply(g, clue.Ordinal(clue.OpGreaterThan, ref("color", "red"), ref("color", "blue"), "house"))
	if g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected red to be eliminated from the lowest rank")
	}
	if g.IsPossible("color", "blue", "house", 3.0) {
		t.Error("expected blue to be eliminated from the highest rank")
	}
}

func TestSolver_Apply_Superlative(t *testing.T) {
	g, _ := grid.NewGrid(testCategories())
	s := NewSolver()
	s.Apply(g, clue.Superlative(clue.OpMin, ref("color", "red"), "house"))
	if !g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected red to be pinned to the minimal house rank")
	}
	if g.IsPossible("color", "red", "house", 2.0) {
		t.Error("expected red to be eliminated from non-minimal ranks")
	}
}

func TestSolver_Apply_Unary(t *testing.T) {
	g, _ := grid.NewGrid(testCategories())
	s := NewSolver()
	s.Apply(g, clue.Unary(clue.FilterIsEven, ref("color", "red"), "house"))
	if g.IsPossible("color", "red", "house", 1.0) {
		t.Error("expected red eliminated from the odd house value 1")
	}
	if g.IsPossible("color", "red", "house", 3.0) {
		t.Error("expected red eliminated from the odd house value 3")
	}
	if !g.IsPossible("color", "red", "house", 2.0) {
		t.Error("expected red to remain possible at the even house value 2")
	}
}

func TestSolver_Apply_UnknownClueIsNoop(t *testing.T) {
	g, _ := grid.NewGrid(testCategories())
	s := NewSolver()
	d := s.Apply(g, clue.Binary(clue.OpIS, ref("color", "purple"), ref("house", 1.0)))
	if d != 0 {
		t.Errorf("expected zero deductions for a clue naming an unknown value, got %d", d)
	}
}
