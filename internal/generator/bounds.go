package generator

import (
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/enumerator"
	"logicgrid-api/internal/grid"
	"logicgrid-api/internal/solver"
)

// boundsScorerMode picks which of the two opposing scorers a bounds-estimator iteration uses.
type boundsScorerMode int

const (
	// scorerMin prefers maximal deductions per clue, converging in as few clues as possible.
	scorerMin boundsScorerMode = iota
	// scorerMax prefers minimal positive deductions per clue, needing as many clues as possible.
	scorerMax
)

// boundsRun drives a single greedy generation using one of the two opposing scorers, rather than
// the full quality-scoring formula greedy() uses — the bounds estimator cares only about the
// resulting clue count's range, not about clue variety or readability.
func boundsRun(categories []core.Category, target core.TargetFact, seed uint32, mode boundsScorerMode) (int, bool) {
	rng := newPRNG(seed)
	solution := buildSolution(rng, categories)
	resolved, err := resolveTarget(categories, solution, &target, rng)
	if err != nil {
		return 0, false
	}
	universe := enumerator.Enumerate(categories, solution)
	available := filterDirectTarget(universe, resolved)

	g, err := grid.NewGrid(categories)
	if err != nil {
		return 0, false
	}
	s := solver.NewSolver()

	count := 0
	for iter := 0; iter < standardModeCap; iter++ {
		if g.IsSolved() || len(available) == 0 {
			break
		}
		shuffle(rng, available)

		bestIdx := -1
		bestD := -1
		var zeroIdx []int
		for i, c := range available {
			clone := g.Clone()
			d := s.Apply(clone, c)
			if d == 0 {
				zeroIdx = append(zeroIdx, i)
				continue
			}
			if clone.RowCount(resolved.Category1, resolved.Value1, resolved.Category2) == 1 && !clone.IsSolved() {
				continue // premature target-only solve: never chosen
			}
			better := (mode == scorerMin && d > bestD) || (mode == scorerMax && (bestD == -1 || d < bestD))
			if better {
				bestD = d
				bestIdx = i
			}
		}
		if bestIdx == -1 {
			if len(zeroIdx) == 0 {
				break
			}
			available = removeIndices(available, zeroIdx)
			continue
		}
		chosen := available[bestIdx]
		s.Apply(g, chosen)
		count++
		available = removeIndices(available, append(zeroIdx, bestIdx))
	}
	if !g.IsSolved() {
		return 0, false
	}
	return count, true
}
