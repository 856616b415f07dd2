package generator

import (
	"math"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

// greedy runs the standard (greedy-with-scoring) engine: up to standardModeCap iterations,
// each one cloning the grid per pooled candidate, scoring the result, and committing the best.
func (r *run) greedy(g *grid.Grid, maxCandidates int) []core.ProofStep {
	var proof []core.ProofStep
	var history []clue.Clue
	available := append([]clue.Clue(nil), r.pool...)

	for iter := 0; iter < standardModeCap; iter++ {
		if g.IsSolved() || len(available) == 0 {
			break
		}

		if maxCandidates < len(available) {
			shuffle(r.rng, available)
		}
		limit := maxCandidates
		if limit > len(available) {
			limit = len(available)
		}

		bestIdx, finalIdx := -1, -1
		bestScore := math.Inf(-1)
		var zeroIdx []int

		for i := 0; i < limit; i++ {
			c := available[i]
			clone := g.Clone()
			d := r.solver.Apply(clone, c)
			if d == 0 {
				zeroIdx = append(zeroIdx, i)
				continue
			}
			s := score(clone, r.target, d, c, history)
			switch {
			case s == solveSentinel && finalIdx == -1:
				finalIdx = i
			case s <= -solveSentinel/2:
				// premature target-only solve: never chosen.
			case s > bestScore:
				bestScore = s
				bestIdx = i
			}
		}

		chosenIdx := finalIdx
		if chosenIdx == -1 {
			chosenIdx = bestIdx
		}
		if chosenIdx == -1 {
			if len(zeroIdx) == 0 {
				break
			}
			available = removeIndices(available, zeroIdx)
			continue
		}

		chosen := available[chosenIdx]
		d := r.solver.Apply(g, chosen)
		proof = append(proof, core.ProofStep{Clue: chosen, Deductions: d})
		history = append(history, chosen)

		available = removeIndices(available, append(zeroIdx, chosenIdx))
	}
	return proof
}

func removeIndices(xs []clue.Clue, idxs []int) []clue.Clue {
	if len(idxs) == 0 {
		return xs
	}
	removed := make(map[int]bool, len(idxs))
	for _, i := range idxs {
		removed[i] = true
	}
	out := make([]clue.Clue, 0, len(xs)-len(removed))
	for i, c := range xs {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out
}
