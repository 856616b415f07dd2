// Package solver implements the deductive propagator: applying one clue's variant-specific
// pruning, then grinding the grid through the uniqueness/transitivity fixed point until quiescent.
package solver

import (
	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

// Solver applies clues to a Grid. It holds no per-instance state — a zero-value Solver is ready
// to use — but is kept as a type (rather than free functions) so a session-style caller can embed
// or extend it with its own technique registry.
type Solver struct{}

// NewSolver returns a ready-to-use Solver.
func NewSolver() *Solver {
	return &Solver{}
}

// Apply mutates g according to c and reports the number of grid-cell changes caused: the
// variant-specific pruning phase plus every pass of the global deduction fixed point. Apply never
// fails; a clue naming unknown categories or values silently contributes zero deductions.
func (s *Solver) Apply(g *grid.Grid, c clue.Clue) int {
	deductions := applyVariant(g, c)
	deductions += s.propagate(g)
	return deductions
}

// ApplyAll applies each clue in order and returns the summed deduction count. It is a thin
// convenience composition of repeated Apply calls — not a new deduction rule — used by the
// proof-chain replay in cmd/verify and by the solvability test.
func (s *Solver) ApplyAll(g *grid.Grid, clues []clue.Clue) int {
	total := 0
	for _, c := range clues {
		total += s.Apply(g, c)
	}
	return total
}

// propagate runs the global deduction sweep to a fixed point: for every ordered triple of
// distinct categories (c1,c2,c3) and every v1 in c1, it applies uniqueness, positive transitivity,
// and negative transitivity, repeating until a full pass makes zero changes.
func (s *Solver) propagate(g *grid.Grid) int {
	total := 0
	cats := g.Categories()
	for {
		passChanges := 0
		for _, c1 := range cats {
			for _, v1 := range c1.Values {
				for _, c2 := range cats {
					if c2.ID == c1.ID {
						continue
					}
					passChanges += uniqueness(g, c1.ID, v1, c2.ID)
					for _, c3 := range cats {
						if c3.ID == c1.ID || c3.ID == c2.ID {
							continue
						}
						passChanges += positiveTransitivity(g, c1.ID, v1, c2.ID, c3.ID)
						passChanges += negativeTransitivity(g, c1.ID, v1, c2.ID, c3.ID)
					}
				}
			}
		}
		total += passChanges
		if passChanges == 0 {
			break
		}
	}
	return total
}

// uniqueness: if exactly one v2 remains possible for (c1,v1), eliminate (v1',v2) for every other
// v1' in c1.
func uniqueness(g *grid.Grid, c1 string, v1 core.Value, c2 string) int {
	idxs := g.PossibleIndices(c1, v1, c2)
	if len(idxs) != 1 {
		return 0
	}
	v2 := g.PossibleValues(c1, v1, c2)[0]
	changes := 0
	for _, cat := range g.Categories() {
		if cat.ID != c1 {
			continue
		}
		for _, other := range cat.Values {
			if other == v1 {
				continue
			}
			if g.Set(c1, other, c2, v2, false) {
				changes++
			}
		}
	}
	return changes
}

// positiveTransitivity: if (c1,v1) uniquely maps to v2 in c2, and v2 uniquely maps to v3 in c3,
// and (v1,v3) is currently ambiguous but still possible, assert it true.
func positiveTransitivity(g *grid.Grid, c1 string, v1 core.Value, c2, c3 string) int {
	v2s := g.PossibleValues(c1, v1, c2)
	if len(v2s) != 1 {
		return 0
	}
	v2 := v2s[0]
	v3s := g.PossibleValues(c2, v2, c3)
	if len(v3s) != 1 {
		return 0
	}
	v3 := v3s[0]
	if !g.IsPossible(c1, v1, c3, v3) {
		return 0
	}
	if g.RowCount(c1, v1, c3) == 1 {
		return 0
	}
	if g.Set(c1, v1, c3, v3, true) {
		return 1
	}
	return 0
}

// negativeTransitivity: eliminate (v1,v3) if no v2 in c2 has both legs possible.
func negativeTransitivity(g *grid.Grid, c1 string, v1 core.Value, c2, c3 string) int {
	changes := 0
	v2s := g.PossibleValues(c1, v1, c2)
	possibleV3 := make(map[core.Value]bool)
	for _, v2 := range v2s {
		for _, v3 := range g.PossibleValues(c2, v2, c3) {
			possibleV3[v3] = true
		}
	}
	for _, v3 := range g.PossibleValues(c1, v1, c3) {
		if !possibleV3[v3] {
			if g.Set(c1, v1, c3, v3, false) {
				changes++
			}
		}
	}
	return changes
}
