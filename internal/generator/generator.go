// Package generator builds a hidden solution, drives the solver repeatedly, and selects a clue
// sequence that guides a blank grid to the solved state: the greedy-with-scoring engine for
// standard generation, and a backtracking engine for an exact clue count.
package generator

import (
	"time"

	"github.com/google/uuid"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/enumerator"
	"logicgrid-api/internal/grid"
	"logicgrid-api/internal/solver"
	"logicgrid-api/pkg/constants"
)

// Generator builds puzzles. It carries no state of its own between calls — every GeneratePuzzle
// invocation owns its own PRNG, grid, and candidate pool for its lifetime, so a single Generator
// is safe to reuse concurrently across goroutines as long as nothing shares a *run.
type Generator struct{}

// NewGenerator returns a ready-to-use Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Constraints restricts which clue variants the enumerator's output may be drawn from.
type Constraints struct {
	AllowedClueTypes []clue.Variant
}

// Options configures one GeneratePuzzle call.
type Options struct {
	// Seed determines every shuffle, solution construction, and tie-break in this call. Accepts
	// an int64/int/uint32, or a string (hashed via a 32-bit FNV-like rolling hash). Zero value
	// means "derive one from the current time".
	Seed any
	// MaxCandidates caps how many pooled candidates standard mode scores per iteration. <= 0
	// means unlimited. Values explicitly set to < 1 are a ConfigurationError; unset (0) is not.
	MaxCandidates int
	maxCandidatesSet bool
	// TargetClueCount switches to backtracking mode when > 0.
	TargetClueCount int
	// TimeoutMs bounds backtracking mode's wall-clock budget. Defaults to 5000.
	TimeoutMs int
	// Constraints restricts the candidate pool.
	Constraints Constraints
}

// WithMaxCandidates records an explicit MaxCandidates, distinguishing "unset" from "set to 0",
// which is itself invalid. Callers building Options as a literal should just set MaxCandidates and
// leave this helper unused unless they need the < 1 validation to trigger on a literal zero.
func (o Options) WithMaxCandidates(n int) Options {
	o.MaxCandidates = n
	o.maxCandidatesSet = true
	return o
}

// Bounds is the result of GetClueCountBounds: the range of clue counts the greedy engine produced
// across repeated runs with two opposing scorers.
type Bounds struct {
	Min int
	Max int
}

const (
	standardModeCap    = constants.StandardModeCap
	defaultBacktrackMs = constants.DefaultBacktrackMs
	boundsIterations   = constants.BoundsIterations
)

// run holds the per-invocation state: the PRNG, the solution, the live grid, the candidate pool,
// and the chosen proof chain so far. Nothing here outlives GeneratePuzzle.
type run struct {
	categories []core.Category
	solution   core.Solution
	target     core.TargetFact
	rng        *prng
	solver     *solver.Solver
	pool       []clue.Clue
}

// GeneratePuzzle builds a hidden solution for categories, then selects an ordered clue sequence
// that, applied through the solver, uniquely determines it. With opts.TargetClueCount set it
// switches to the backtracking engine to hit that count exactly; otherwise it runs the greedy
// engine and the resulting chain length is whatever the scorer converges on.
func (gen *Generator) GeneratePuzzle(categories []core.Category, target *core.TargetFact, opts Options) (*core.Puzzle, error) {
	if opts.maxCandidatesSet && opts.MaxCandidates < 1 {
		return nil, core.NewConfigurationError("maxCandidates must be >= 1, got %d", opts.MaxCandidates)
	}
	if _, err := grid.NewGrid(categories); err != nil {
		return nil, err
	}

	if err := validateConstraints(categories, opts.Constraints); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == nil {
		seed = time.Now().UnixNano()
	}
	rng := newPRNG(seedFromAny(seed))

	solution := buildSolution(rng, categories)

	resolvedTarget, err := resolveTarget(categories, solution, target, rng)
	if err != nil {
		return nil, err
	}

	universe := enumerator.Enumerate(categories, solution)
	pool := filterAllowed(universe, opts.Constraints)
	pool = filterDirectTarget(pool, resolvedTarget)

	r := &run{
		categories: categories,
		solution:   solution,
		target:     resolvedTarget,
		rng:        rng,
		solver:     solver.NewSolver(),
		pool:       pool,
	}

	g, err := grid.NewGrid(categories)
	if err != nil {
		return nil, err
	}

	var proof []core.ProofStep
	if opts.TargetClueCount > 0 {
		timeoutMs := opts.TimeoutMs
		if timeoutMs <= 0 {
			timeoutMs = defaultBacktrackMs
		}
		proof, err = r.backtrack(g, opts.TargetClueCount, timeoutMs)
		if err != nil {
			return nil, err
		}
	} else {
		maxCandidates := opts.MaxCandidates
		if maxCandidates <= 0 {
			maxCandidates = len(pool)
		}
		proof = r.greedy(g, maxCandidates)
	}

	clues := make([]clue.Clue, len(proof))
	for i, p := range proof {
		clues[i] = p.Clue
	}

	return &core.Puzzle{
		PuzzleID:   uuid.NewString(),
		Categories: categories,
		Solution:   solution,
		Clues:      clues,
		Proof:      proof,
		Target:     resolvedTarget,
	}, nil
}

// GetClueCountBounds runs boundsIterations generations under each of the two opposing scorers —
// one preferring maximal deductions per clue, the other minimal positive deductions — and returns
// the {min, max} clue counts observed across both. Iterations that fail to generate are swallowed;
// an error is only returned if every iteration of both scorers failed.
func (gen *Generator) GetClueCountBounds(categories []core.Category, target core.TargetFact) (Bounds, error) {
	if _, err := grid.NewGrid(categories); err != nil {
		return Bounds{}, err
	}

	var counts []int
	for i := 0; i < boundsIterations; i++ {
		if c, ok := boundsRun(categories, target, uint32(i*2+1), scorerMin); ok {
			counts = append(counts, c)
		}
		if c, ok := boundsRun(categories, target, uint32(i*2+2), scorerMax); ok {
			counts = append(counts, c)
		}
	}

	if len(counts) == 0 {
		return Bounds{}, core.NewConfigurationError("could not estimate clue count bounds")
	}
	min, max := counts[0], counts[0]
	for _, c := range counts {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return Bounds{Min: min, Max: max}, nil
}

func validateConstraints(categories []core.Category, c Constraints) error {
	if len(c.AllowedClueTypes) == 0 {
		return nil
	}
	allowed := map[clue.Variant]bool{}
	for _, v := range c.AllowedClueTypes {
		allowed[v] = true
	}

	identityResolving := false
	for v := range allowed {
		if v.IdentityResolving() {
			identityResolving = true
		}
	}
	if !identityResolving {
		return core.NewConfigurationError("Invalid Constraints")
	}

	hasOrdinal := false
	for _, c := range categories {
		if c.Kind == core.KindOrdinal {
			hasOrdinal = true
			break
		}
	}

	needsOrdinal := false
	for v := range allowed {
		if v.RequiresOrdinalCategory() {
			needsOrdinal = true
		}
	}
	if needsOrdinal && !hasOrdinal {
		return core.NewConfigurationError("ordinal-dependent clue type allowed but no ORDINAL category exists")
	}

	if allowed[clue.VariantUnary] {
		if !anyOrdinalHasBothParities(categories) {
			return core.NewConfigurationError("Unary allowed but no ORDINAL category has both an odd and an even value")
		}
	}

	if allowed[clue.VariantCrossOrdinal] {
		n := 0
		for _, c := range categories {
			if c.Kind == core.KindOrdinal {
				n++
			}
		}
		if n < 2 {
			return core.NewConfigurationError("CrossOrdinal allowed but fewer than two ORDINAL categories exist")
		}
	}

	return nil
}

func anyOrdinalHasBothParities(categories []core.Category) bool {
	for _, c := range categories {
		if c.Kind != core.KindOrdinal {
			continue
		}
		odd, even := false, false
		for _, v := range c.Values {
			n, ok := asInt(v)
			if !ok {
				continue
			}
			if n%2 == 0 {
				even = true
			} else {
				odd = true
			}
		}
		if odd && even {
			return true
		}
	}
	return false
}

func resolveTarget(categories []core.Category, solution core.Solution, target *core.TargetFact, rng *prng) (core.TargetFact, error) {
	if target != nil {
		if err := validateTarget(categories, *target); err != nil {
			return core.TargetFact{}, err
		}
		return *target, nil
	}
	// Synthesize one deterministically from the seed: take the first two categories in input order
	// and a PRNG-chosen value of the first.
	if len(categories) < 2 {
		return core.TargetFact{}, core.NewConfigurationError("cannot synthesize a target with fewer than two categories")
	}
	cat1, cat2 := categories[0], categories[1]
	idx := rng.intn(len(cat1.Values))
	t := core.TargetFact{Category1: cat1.ID, Value1: cat1.Values[idx], Category2: cat2.ID}
	return t, nil
}

func validateTarget(categories []core.Category, t core.TargetFact) error {
	if t.Category1 == t.Category2 {
		return core.NewConfigurationError("target fact must reference distinct categories")
	}
	var c1, c2 *core.Category
	for i := range categories {
		if categories[i].ID == t.Category1 {
			c1 = &categories[i]
		}
		if categories[i].ID == t.Category2 {
			c2 = &categories[i]
		}
	}
	if c1 == nil || c2 == nil {
		return core.NewConfigurationError("target fact references a category that does not exist")
	}
	found := false
	for _, v := range c1.Values {
		if v == t.Value1 {
			found = true
			break
		}
	}
	if !found {
		return core.NewConfigurationError("target fact references a value that does not exist in %q", t.Category1)
	}
	return nil
}

func filterAllowed(pool []clue.Clue, c Constraints) []clue.Clue {
	if len(c.AllowedClueTypes) == 0 {
		return pool
	}
	allowed := map[clue.Variant]bool{}
	for _, v := range c.AllowedClueTypes {
		allowed[v] = true
	}
	out := make([]clue.Clue, 0, len(pool))
	for _, cl := range pool {
		if allowed[cl.Variant] {
			out = append(out, cl)
		}
	}
	return out
}

// filterDirectTarget removes any Binary IS clue whose endpoints exactly equal the target fact (or
// its reverse), so it can never be chosen.
func filterDirectTarget(pool []clue.Clue, target core.TargetFact) []clue.Clue {
	out := make([]clue.Clue, 0, len(pool))
	for _, c := range pool {
		if c.Variant == clue.VariantBinary && c.Binary.Op == clue.OpIS {
			b := c.Binary
			direct := (b.I1.Category == target.Category1 && b.I1.Value == target.Value1 && b.I2.Category == target.Category2) ||
				(b.I2.Category == target.Category1 && b.I2.Value == target.Value1 && b.I1.Category == target.Category2)
			if direct {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}
