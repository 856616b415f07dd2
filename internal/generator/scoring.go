package generator

import (
	"math"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

// solveSentinel is the +/-1,000,000 score reserved for the target-timing outcomes; it always
// outranks the continuous part of the formula below.
const solveSentinel = 1_000_000.0

// complexityMultiplier is the scorer's per-variant complexity bonus, keyed by a descriptor table
// in the same "slug -> metadata" shape as a technique registry, since Binary needs a per-op split
// (IS vs IS_NOT) that a plain Variant switch can't express.
var complexityMultiplier = map[string]float64{
	"binary:IS":     1.0,
	"binary:IS_NOT": 5.0,
	"ordinal":       1.5,
	"superlative":   1.2,
	"unary":         1.2,
	"cross_ordinal": 1.5,
}

func complexityKey(c clue.Clue) string {
	switch c.Variant {
	case clue.VariantBinary:
		return "binary:" + string(c.Binary.Op)
	default:
		return string(c.Variant)
	}
}

// primarySubject returns the clue's primary subject (first argument for Binary/Superlative/Unary,
// i1 for Ordinal) and, when it has one, its secondary subject (Binary-IS_NOT's second value,
// Ordinal's i2).
func primarySubject(c clue.Clue) (clue.ItemRef, *clue.ItemRef) {
	switch c.Variant {
	case clue.VariantBinary:
		if c.Binary.Op == clue.OpISNOT {
			i2 := c.Binary.I2
			return c.Binary.I1, &i2
		}
		return c.Binary.I1, nil
	case clue.VariantOrdinal:
		i2 := c.Ordinal.I2
		return c.Ordinal.I1, &i2
	case clue.VariantSuperlative:
		return c.Superlative.Target, nil
	case clue.VariantUnary:
		return c.Unary.Target, nil
	case clue.VariantCrossOrdinal:
		return c.CrossOrdinal.Anchor1.Item, nil
	default:
		return clue.ItemRef{}, nil
	}
}

// ordCatOf returns the ordinal category a clue is dimensioned against, if any.
func ordCatOf(c clue.Clue) (string, bool) {
	switch c.Variant {
	case clue.VariantOrdinal:
		return c.Ordinal.OrdCat, true
	case clue.VariantSuperlative:
		return c.Superlative.OrdCat, true
	case clue.VariantUnary:
		return c.Unary.OrdCat, true
	case clue.VariantCrossOrdinal:
		return c.CrossOrdinal.Anchor1.OrdCat, true
	default:
		return "", false
	}
}

// score is the pure scoring function over (grid-before isn't needed, grid-after, target,
// deductions, candidate, history). It returns a real number; +-1,000,000 are the target-timing
// sentinels and outrank everything else.
func score(after *grid.Grid, target core.TargetFact, deductions int, candidate clue.Clue, history []clue.Clue) float64 {
	targetRowSolved := after.RowCount(target.Category1, target.Value1, target.Category2) == 1
	puzzleSolved := after.IsSolved()

	if targetRowSolved && puzzleSolved {
		return solveSentinel
	}
	if targetRowSolved && !puzzleSolved {
		return -solveSentinel
	}

	stats := after.Stats()
	completeness := 0.0
	if stats.Total != stats.Solution {
		completeness = float64(stats.Total-stats.Current) / float64(stats.Total-stats.Solution)
	}

	complexity := complexityMultiplier[complexityKey(candidate)]
	if complexity == 0 {
		complexity = 1.0
	}

	base := float64(deductions)

	repetition := repetitionPenalty(candidate, history)

	raw := (base*complexity + completeness*5) * math.Pow(0.4, repetition)
	return raw
}

func repetitionPenalty(candidate clue.Clue, history []clue.Clue) float64 {
	r := 0.0
	primary, secondary := primarySubject(candidate)
	dim, hasDim := ordCatOf(candidate)

	for _, h := range history {
		hp, hs := primarySubject(h)
		if hp == primary {
			r += 1.0
		}
		if secondary != nil && hs != nil && *secondary == *hs {
			r += 0.5
		}
		if hd, ok := ordCatOf(h); ok && hasDim && hd == dim {
			r += 0.5
		}
	}

	n := len(history)
	if n >= 1 {
		prev := history[n-1]
		if prev.Variant == candidate.Variant {
			r += 2.0
			if candidate.Variant == clue.VariantBinary && candidate.Binary.Op == clue.OpIS {
				r += 2.0
			}
		}
		if n >= 2 {
			prev2 := history[n-2]
			if prev.Variant == candidate.Variant && prev2.Variant == candidate.Variant {
				r += 5.0
			}
		}
	}
	return r
}
