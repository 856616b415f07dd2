package solver

import (
	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
	"logicgrid-api/internal/grid"
)

// applyVariant walks a clue's meaning once against the current grid and returns the number of
// cell changes it directly caused (the fixed point sweep runs separately, afterward).
func applyVariant(g *grid.Grid, c clue.Clue) int {
	switch c.Variant {
	case clue.VariantBinary:
		return applyBinary(g, c.Binary)
	case clue.VariantOrdinal:
		return applyOrdinal(g, c.Ordinal)
	case clue.VariantSuperlative:
		return applySuperlative(g, c.Superlative)
	case clue.VariantUnary:
		return applyUnary(g, c.Unary)
	case clue.VariantCrossOrdinal:
		return applyCrossOrdinal(g, c.CrossOrdinal)
	default:
		return 0
	}
}

func applyBinary(g *grid.Grid, b *clue.BinaryClue) int {
	if !known(g, b.I1) || !known(g, b.I2) {
		return 0
	}
	changes := 0
	switch b.Op {
	case clue.OpIS:
		if g.Set(b.I1.Category, b.I1.Value, b.I2.Category, b.I2.Value, true) {
			changes++
		}
		for _, v2 := range valuesOf(g, b.I2.Category) {
			if v2 == b.I2.Value {
				continue
			}
			if g.Set(b.I1.Category, b.I1.Value, b.I2.Category, v2, false) {
				changes++
			}
		}
		for _, v1 := range valuesOf(g, b.I1.Category) {
			if v1 == b.I1.Value {
				continue
			}
			if g.Set(b.I1.Category, v1, b.I2.Category, b.I2.Value, false) {
				changes++
			}
		}
	case clue.OpISNOT:
		if g.Set(b.I1.Category, b.I1.Value, b.I2.Category, b.I2.Value, false) {
			changes++
		}
	}
	return changes
}

// known reports whether ref names a category and value present in g: the identity diagonal is
// possible exactly for known coordinates.
func known(g *grid.Grid, ref clue.ItemRef) bool {
	return g.IsPossible(ref.Category, ref.Value, ref.Category, ref.Value)
}

func valuesOf(g *grid.Grid, cat string) []core.Value {
	for _, c := range g.Categories() {
		if c.ID == cat {
			return c.Values
		}
	}
	return nil
}

func rankComparator(op clue.OrdinalOp) func(r1, r2 int) bool {
	switch op {
	case clue.OpGreaterThan:
		return func(r1, r2 int) bool { return r1 > r2 }
	case clue.OpLessThan:
		return func(r1, r2 int) bool { return r1 < r2 }
	case clue.OpNotGreaterThan:
		return func(r1, r2 int) bool { return r1 <= r2 }
	case clue.OpNotLessThan:
		return func(r1, r2 int) bool { return r1 >= r2 }
	default:
		return func(r1, r2 int) bool { return false }
	}
}

func applyOrdinal(g *grid.Grid, o *clue.OrdinalClue) int {
	changes := 0
	cmp := rankComparator(o.Op)

	r1s := g.PossibleIndices(o.I1.Category, o.I1.Value, o.OrdCat)
	r2s := g.PossibleIndices(o.I2.Category, o.I2.Value, o.OrdCat)

	for _, r1 := range r1s {
		ok := false
		for _, r2 := range r2s {
			if cmp(r1, r2) {
				ok = true
				break
			}
		}
		if !ok {
			if v, found := g.ValueAtRank(o.OrdCat, r1); found {
				if g.Set(o.I1.Category, o.I1.Value, o.OrdCat, v, false) {
					changes++
				}
			}
		}
	}
	for _, r2 := range r2s {
		ok := false
		for _, r1 := range r1s {
			if cmp(r1, r2) {
				ok = true
				break
			}
		}
		if !ok {
			if v, found := g.ValueAtRank(o.OrdCat, r2); found {
				if g.Set(o.I2.Category, o.I2.Value, o.OrdCat, v, false) {
					changes++
				}
			}
		}
	}
	return changes
}

func applySuperlative(g *grid.Grid, s *clue.SuperlativeClue) int {
	k := g.K()
	min, okMin := g.ValueAtRank(s.OrdCat, 0)
	max, okMax := g.ValueAtRank(s.OrdCat, k-1)
	if !okMin || !okMax {
		return 0
	}
	switch s.Op {
	case clue.OpMin:
		return applyBinary(g, &clue.BinaryClue{Op: clue.OpIS, I1: s.Target, I2: clue.ItemRef{Category: s.OrdCat, Value: min}})
	case clue.OpMax:
		return applyBinary(g, &clue.BinaryClue{Op: clue.OpIS, I1: s.Target, I2: clue.ItemRef{Category: s.OrdCat, Value: max}})
	case clue.OpNotMin:
		return applyBinary(g, &clue.BinaryClue{Op: clue.OpISNOT, I1: s.Target, I2: clue.ItemRef{Category: s.OrdCat, Value: min}})
	case clue.OpNotMax:
		return applyBinary(g, &clue.BinaryClue{Op: clue.OpISNOT, I1: s.Target, I2: clue.ItemRef{Category: s.OrdCat, Value: max}})
	default:
		return 0
	}
}

func applyUnary(g *grid.Grid, u *clue.UnaryClue) int {
	changes := 0
	wantOdd := u.Filter == clue.FilterIsOdd
	for _, v := range valuesOf(g, u.OrdCat) {
		n, ok := asInt(v)
		if !ok {
			continue
		}
		isOdd := n%2 != 0
		if isOdd != wantOdd {
			if g.Set(u.Target.Category, u.Target.Value, u.OrdCat, v, false) {
				changes++
			}
		}
	}
	return changes
}

func asInt(v core.Value) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// derivedRank returns the in-range derived rank for a candidate anchor rank, or (-1, false) when
// the offset pushes it out of the ordinal category's range.
func derivedRank(g *grid.Grid, ordCat string, rank, offset int) (int, bool) {
	k := g.K()
	d := rank + offset
	if d < 0 || d >= k {
		return -1, false
	}
	return d, true
}

func applyCrossOrdinal(g *grid.Grid, x *clue.CrossOrdinalClue) int {
	switch x.Op {
	case clue.OpMatch:
		return applyCrossMatch(g, x)
	case clue.OpNotMatch:
		return applyCrossNotMatch(g, x)
	default:
		return 0
	}
}

func applyCrossMatch(g *grid.Grid, x *clue.CrossOrdinalClue) int {
	changes := 0
	a1, a2 := x.Anchor1, x.Anchor2

	r1s := g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
	r2s := g.PossibleIndices(a2.Item.Category, a2.Item.Value, a2.OrdCat)

	keepR1 := map[int]bool{}
	for _, r1 := range r1s {
		dr1, ok := derivedRank(g, a1.OrdCat, r1, a1.Offset)
		if !ok {
			continue
		}
		dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
		for _, r2 := range r2s {
			dr2, ok := derivedRank(g, a2.OrdCat, r2, a2.Offset)
			if !ok {
				continue
			}
			dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
			if g.IsPossible(a1.OrdCat, dv1, a2.OrdCat, dv2) {
				keepR1[r1] = true
				break
			}
		}
	}
	for _, r1 := range r1s {
		if !keepR1[r1] {
			if v, found := g.ValueAtRank(a1.OrdCat, r1); found {
				if g.Set(a1.Item.Category, a1.Item.Value, a1.OrdCat, v, false) {
					changes++
				}
			}
		}
	}

	r1s = g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
	keepR2 := map[int]bool{}
	for _, r2 := range r2s {
		dr2, ok := derivedRank(g, a2.OrdCat, r2, a2.Offset)
		if !ok {
			continue
		}
		dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
		for _, r1 := range r1s {
			dr1, ok := derivedRank(g, a1.OrdCat, r1, a1.Offset)
			if !ok {
				continue
			}
			dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
			if g.IsPossible(a1.OrdCat, dv1, a2.OrdCat, dv2) {
				keepR2[r2] = true
				break
			}
		}
	}
	for _, r2 := range r2s {
		if !keepR2[r2] {
			if v, found := g.ValueAtRank(a2.OrdCat, r2); found {
				if g.Set(a2.Item.Category, a2.Item.Value, a2.OrdCat, v, false) {
					changes++
				}
			}
		}
	}

	r1s = g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
	r2s = g.PossibleIndices(a2.Item.Category, a2.Item.Value, a2.OrdCat)
	if len(r1s) == 1 && len(r2s) == 1 {
		dr1, ok1 := derivedRank(g, a1.OrdCat, r1s[0], a1.Offset)
		dr2, ok2 := derivedRank(g, a2.OrdCat, r2s[0], a2.Offset)
		if ok1 && ok2 {
			dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
			dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
			if g.Set(a1.OrdCat, dv1, a2.OrdCat, dv2, true) {
				changes++
			}
		}
	}
	return changes
}

func applyCrossNotMatch(g *grid.Grid, x *clue.CrossOrdinalClue) int {
	changes := 0
	a1, a2 := x.Anchor1, x.Anchor2

	r1s := g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
	r2s := g.PossibleIndices(a2.Item.Category, a2.Item.Value, a2.OrdCat)

	if len(r1s) == 1 {
		dr1, ok := derivedRank(g, a1.OrdCat, r1s[0], a1.Offset)
		if ok {
			dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
			for _, r2 := range r2s {
				dr2, ok := derivedRank(g, a2.OrdCat, r2, a2.Offset)
				if !ok {
					continue
				}
				dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
				if g.IsPossible(a1.OrdCat, dv1, a2.OrdCat, dv2) {
					if v, found := g.ValueAtRank(a2.OrdCat, r2); found {
						if g.Set(a2.Item.Category, a2.Item.Value, a2.OrdCat, v, false) {
							changes++
						}
					}
				}
			}
		}
	}

	r2s = g.PossibleIndices(a2.Item.Category, a2.Item.Value, a2.OrdCat)
	if len(r2s) == 1 {
		dr2, ok := derivedRank(g, a2.OrdCat, r2s[0], a2.Offset)
		if ok {
			dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
			r1s = g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
			for _, r1 := range r1s {
				dr1, ok := derivedRank(g, a1.OrdCat, r1, a1.Offset)
				if !ok {
					continue
				}
				dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
				if g.IsPossible(a1.OrdCat, dv1, a2.OrdCat, dv2) {
					if v, found := g.ValueAtRank(a1.OrdCat, r1); found {
						if g.Set(a1.Item.Category, a1.Item.Value, a1.OrdCat, v, false) {
							changes++
						}
					}
				}
			}
		}
	}

	r1s = g.PossibleIndices(a1.Item.Category, a1.Item.Value, a1.OrdCat)
	r2s = g.PossibleIndices(a2.Item.Category, a2.Item.Value, a2.OrdCat)
	if len(r1s) == 1 && len(r2s) == 1 {
		dr1, ok1 := derivedRank(g, a1.OrdCat, r1s[0], a1.Offset)
		dr2, ok2 := derivedRank(g, a2.OrdCat, r2s[0], a2.Offset)
		if ok1 && ok2 {
			dv1, _ := g.ValueAtRank(a1.OrdCat, dr1)
			dv2, _ := g.ValueAtRank(a2.OrdCat, dr2)
			if g.Set(a1.OrdCat, dv1, a2.OrdCat, dv2, false) {
				changes++
			}
		}
	}
	return changes
}
