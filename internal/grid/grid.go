// Package grid implements the possibility grid: the primitive for querying and eliminating
// candidate cross-category pairings. It is the only place that mutates puzzle state; the solver
// and generator call through it exclusively.
package grid

import (
	"logicgrid-api/internal/core"
	"logicgrid-api/pkg/constants"
)

// Grid stores, for every ordered pair of distinct categories (c1,c2) and every value v1 of c1, a
// Candidates bitmask over c2's value indices: the live row `poss(c1,v1,c2,*)`. The identity
// diagonal (c1==c2) is never stored — IsPossible answers it directly from the value indices.
type Grid struct {
	categories []core.Category
	catIndex   map[string]int
	valIndex   []map[core.Value]int
	k          int
	rows       [][][]Candidates // rows[c1][v1][c2]
}

// NewGrid validates categories and builds an all-possible grid over them. It fails with a
// *core.ConfigurationError on any of: duplicate category IDs, duplicate values within a category,
// categories of mismatched size, or an ORDINAL category whose values aren't numeric and sorted
// ascending.
func NewGrid(categories []core.Category) (*Grid, error) {
	if len(categories) < constants.MinCategoryCount {
		return nil, core.NewConfigurationError("at least %d categories are required, got %d", constants.MinCategoryCount, len(categories))
	}

	catIndex := make(map[string]int, len(categories))
	k := len(categories[0].Values)
	for i, c := range categories {
		if c.ID == "" {
			return nil, core.NewConfigurationError("category %d has an empty ID", i)
		}
		if _, dup := catIndex[c.ID]; dup {
			return nil, core.NewConfigurationError("duplicate category ID %q", c.ID)
		}
		catIndex[c.ID] = i
		if len(c.Values) != k {
			return nil, core.NewConfigurationError(
				"category %q has %d values, expected %d (all categories must share the same K)",
				c.ID, len(c.Values), k)
		}
	}

	valIndex := make([]map[core.Value]int, len(categories))
	for i, c := range categories {
		vi := make(map[core.Value]int, len(c.Values))
		for j, v := range c.Values {
			if _, dup := vi[v]; dup {
				return nil, core.NewConfigurationError("category %q has duplicate value %v", c.ID, v)
			}
			vi[v] = j
		}
		valIndex[i] = vi

		if c.Kind == core.KindOrdinal {
			if err := validateOrdinal(c); err != nil {
				return nil, err
			}
		}
	}

	g := &Grid{
		categories: categories,
		catIndex:   catIndex,
		valIndex:   valIndex,
		k:          k,
		rows:       make([][][]Candidates, len(categories)),
	}
	allPossible := full(k)
	for c1 := range categories {
		g.rows[c1] = make([][]Candidates, k)
		for v1 := 0; v1 < k; v1++ {
			g.rows[c1][v1] = make([]Candidates, len(categories))
			for c2 := range categories {
				if c2 != c1 {
					g.rows[c1][v1][c2] = allPossible
				}
			}
		}
	}
	return g, nil
}

func validateOrdinal(c core.Category) error {
	prev := float64(0)
	for i, v := range c.Values {
		n, ok := toFloat(v)
		if !ok {
			return core.NewConfigurationError("ordinal category %q has non-numeric value %v", c.ID, v)
		}
		if i > 0 && n <= prev {
			return core.NewConfigurationError("ordinal category %q values must be sorted ascending", c.ID)
		}
		prev = n
	}
	return nil
}

func toFloat(v core.Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// PossibleIndices returns, for (c1,v1), the value indices of c2 still possible, in ascending
// order. Unknown coordinates return nil.
func (g *Grid) PossibleIndices(c1 string, v1 core.Value, c2 string) []int {
	ci1, vi1, ok := g.lookup(c1, v1)
	if !ok {
		return nil
	}
	ci2, ok := g.catIndex[c2]
	if !ok {
		return nil
	}
	if ci1 == ci2 {
		return []int{vi1}
	}
	return g.rows[ci1][vi1][ci2].ToSlice()
}

// PossibleValues is PossibleIndices translated back to category values.
func (g *Grid) PossibleValues(c1 string, v1 core.Value, c2 string) []core.Value {
	idxs := g.PossibleIndices(c1, v1, c2)
	if idxs == nil {
		return nil
	}
	ci2 := g.catIndex[c2]
	out := make([]core.Value, len(idxs))
	for i, idx := range idxs {
		out[i] = g.categories[ci2].Values[idx]
	}
	return out
}

// Categories returns the categories this grid was built over, in original order.
func (g *Grid) Categories() []core.Category {
	return g.categories
}

// K returns the shared value count per category.
func (g *Grid) K() int {
	return g.k
}

// lookup resolves a (category,value) pair to (catIdx, valIdx, ok).
func (g *Grid) lookup(cat string, val core.Value) (int, int, bool) {
	ci, ok := g.catIndex[cat]
	if !ok {
		return 0, 0, false
	}
	vi, ok := g.valIndex[ci][val]
	if !ok {
		return 0, 0, false
	}
	return ci, vi, true
}

// IsPossible reports whether (c1,v1) could still pair with (c2,v2). Unknown coordinates answer
// false. The identity diagonal is respected: a category queried against itself is true only when
// v1 == v2.
func (g *Grid) IsPossible(c1 string, v1 core.Value, c2 string, v2 core.Value) bool {
	ci1, vi1, ok := g.lookup(c1, v1)
	if !ok {
		return false
	}
	ci2, vi2, ok := g.lookup(c2, v2)
	if !ok {
		return false
	}
	if ci1 == ci2 {
		return vi1 == vi2
	}
	return g.rows[ci1][vi1][ci2].Has(vi2)
}

// Set updates poss(c1,v1,c2,v2) to state in both symmetric directions and reports whether either
// direction actually changed. It is a no-op if either coordinate is unknown or if c1 == c2. Set is
// the only mutation primitive in the grid; it never itself propagates further deductions — that
// is the solver's job.
func (g *Grid) Set(c1 string, v1 core.Value, c2 string, v2 core.Value, state bool) bool {
	ci1, vi1, ok := g.lookup(c1, v1)
	if !ok {
		return false
	}
	ci2, vi2, ok := g.lookup(c2, v2)
	if !ok {
		return false
	}
	if ci1 == ci2 {
		return false
	}
	return g.setIdx(ci1, vi1, ci2, vi2, state)
}

func (g *Grid) setIdx(ci1, vi1, ci2, vi2 int, state bool) bool {
	changed := false
	if state {
		if !g.rows[ci1][vi1][ci2].Has(vi2) {
			g.rows[ci1][vi1][ci2] = g.rows[ci1][vi1][ci2].Set(vi2)
			changed = true
		}
		if !g.rows[ci2][vi2][ci1].Has(vi1) {
			g.rows[ci2][vi2][ci1] = g.rows[ci2][vi2][ci1].Set(vi1)
			changed = true
		}
	} else {
		if next, did := g.rows[ci1][vi1][ci2].Clear(vi2); did {
			g.rows[ci1][vi1][ci2] = next
			changed = true
		}
		if next, did := g.rows[ci2][vi2][ci1].Clear(vi1); did {
			g.rows[ci2][vi2][ci1] = next
			changed = true
		}
	}
	return changed
}

// RowCount returns the number of c2-values still possible for (c1,v1). Unknown coordinates
// return 0.
func (g *Grid) RowCount(c1 string, v1 core.Value, c2 string) int {
	ci1, vi1, ok := g.lookup(c1, v1)
	if !ok {
		return 0
	}
	ci2, ok := g.catIndex[c2]
	if !ok {
		return 0
	}
	if ci1 == ci2 {
		return 1
	}
	return g.rows[ci1][vi1][ci2].Count()
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		categories: g.categories,
		catIndex:   g.catIndex,
		valIndex:   g.valIndex,
		k:          g.k,
		rows:       make([][][]Candidates, len(g.categories)),
	}
	for c1 := range g.categories {
		clone.rows[c1] = make([][]Candidates, g.k)
		for v1 := 0; v1 < g.k; v1++ {
			row := make([]Candidates, len(g.categories))
			copy(row, g.rows[c1][v1])
			clone.rows[c1][v1] = row
		}
	}
	return clone
}

// Stats reports the grid's possibility counts.
type Stats struct {
	Total    int
	Current  int
	Solution int
}

// Stats returns {total, current, solution} over unordered category pairs: total = K²·(C choose
// 2), solution = K·(C choose 2), current = the live count.
func (g *Grid) Stats() Stats {
	c := len(g.categories)
	pairs := c * (c - 1) / 2
	s := Stats{
		Total:    g.k * g.k * pairs,
		Solution: g.k * pairs,
	}
	for c1 := 0; c1 < c; c1++ {
		for c2 := c1 + 1; c2 < c; c2++ {
			for v1 := 0; v1 < g.k; v1++ {
				s.Current += g.rows[c1][v1][c2].Count()
			}
		}
	}
	return s
}

// IsSolved reports whether every row has collapsed to exactly one possibility.
func (g *Grid) IsSolved() bool {
	c := len(g.categories)
	for c1 := 0; c1 < c; c1++ {
		for c2 := 0; c2 < c; c2++ {
			if c1 == c2 {
				continue
			}
			for v1 := 0; v1 < g.k; v1++ {
				if g.rows[c1][v1][c2].Count() != 1 {
					return false
				}
			}
		}
	}
	return true
}

// DiffVisual counts observable transitions between prev and g: cells that went true→false, plus
// rows whose count went from >1 down to exactly 1. It is session metadata only — no core
// algorithm depends on it.
func (g *Grid) DiffVisual(prev *Grid) int {
	c := len(g.categories)
	count := 0
	for c1 := 0; c1 < c; c1++ {
		for c2 := c1 + 1; c2 < c; c2++ {
			for v1 := 0; v1 < g.k; v1++ {
				before := prev.rows[c1][v1][c2]
				after := g.rows[c1][v1][c2]
				for v2 := 0; v2 < g.k; v2++ {
					if before.Has(v2) && !after.Has(v2) {
						count++
					}
				}
				if before.Count() > 1 && after.Count() == 1 {
					count++
				}
			}
		}
	}
	return count
}

// RankIndex returns the ordinal rank (its index in Values) of val within ORDINAL category cat.
func (g *Grid) RankIndex(cat string, val core.Value) (int, bool) {
	ci, vi, ok := g.lookup(cat, val)
	if !ok {
		return 0, false
	}
	_ = ci
	return vi, true
}

// ValueAtRank returns the value of category cat at ordinal rank index i.
func (g *Grid) ValueAtRank(cat string, i int) (core.Value, bool) {
	ci, ok := g.catIndex[cat]
	if !ok || i < 0 || i >= len(g.categories[ci].Values) {
		return nil, false
	}
	return g.categories[ci].Values[i], true
}

// CategoryKind returns the CategoryKind of cat.
func (g *Grid) CategoryKind(cat string) (core.CategoryKind, bool) {
	ci, ok := g.catIndex[cat]
	if !ok {
		return "", false
	}
	return g.categories[ci].Kind, true
}
