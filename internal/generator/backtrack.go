package generator

import (
	"sort"
	"time"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

// backtrack runs the exact-count engine: a depth-first search, bounded by timeoutMs of wall
// clock, that reserves room for exactly target clues by rejecting any candidate that would solve
// the grid before that depth is reached.
func (r *run) backtrack(g *grid.Grid, target int, timeoutMs int) ([]core.ProofStep, error) {
	deadline := time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	stats := g.Stats()
	proof, ok := r.backtrackStep(g, r.pool, nil, target, stats.Total, stats.Solution, deadline)
	if !ok {
		return nil, core.NewConfigurationError("Could not generate puzzle")
	}
	return proof, nil
}

type btCandidate struct {
	idx   int
	clue  clue.Clue
	after *grid.Grid
	d     int
	sc    float64
}

func (r *run) backtrackStep(
	g *grid.Grid,
	available []clue.Clue,
	chain []core.ProofStep,
	target, totalPossible, solutionPossible int,
	deadline time.Time,
) ([]core.ProofStep, bool) {
	if time.Now().After(deadline) {
		return nil, false
	}
	if g.IsSolved() {
		if len(chain) == target {
			return chain, true
		}
		return nil, false
	}
	if len(chain) >= target {
		return nil, false
	}

	stats := g.Stats()
	progress := 0.0
	if totalPossible != solutionPossible {
		progress = float64(totalPossible-stats.Current) / float64(totalPossible-solutionPossible)
	}
	expected := float64(len(chain)+1) / float64(target)
	behind := progress < expected

	history := make([]clue.Clue, len(chain))
	for i, p := range chain {
		history[i] = p.Clue
	}

	var cands []btCandidate
	for i, c := range available {
		clone := g.Clone()
		d := r.solver.Apply(clone, c)
		if d == 0 {
			continue
		}
		if clone.IsSolved() && len(chain)+1 < target {
			// would fully solve before the reserved depth: rejected outright.
			continue
		}
		base := score(clone, r.target, d, c, history)
		if base <= -solveSentinel/2 {
			continue
		}
		sc := base
		if behind {
			sc += float64(d) * 10
		} else {
			sc += 10.0 / float64(d)
		}
		sc += r.rng.float64() * 1e-6 // jitter: tie-break only, never dominates
		cands = append(cands, btCandidate{idx: i, clue: c, after: clone, d: d, sc: sc})
	}

	sort.SliceStable(cands, func(a, b int) bool { return cands[a].sc > cands[b].sc })

	for _, cd := range cands {
		nextAvailable := removeIndices(available, []int{cd.idx})
		nextChain := append(append([]core.ProofStep(nil), chain...), core.ProofStep{Clue: cd.clue, Deductions: cd.d})
		if result, ok := r.backtrackStep(cd.after, nextAvailable, nextChain, target, totalPossible, solutionPossible, deadline); ok {
			return result, true
		}
		if time.Now().After(deadline) {
			return nil, false
		}
	}
	return nil, false
}
