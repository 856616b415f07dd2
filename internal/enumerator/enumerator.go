// Package enumerator produces the complete universe of clue instances truthful against a chosen
// solution. Its output order is a pure function of the categories — the generator is the only
// source of randomness in this system.
package enumerator

import (
	"sort"

	"logicgrid-api/internal/clue"
	"logicgrid-api/internal/core"
)

// Enumerate returns every truthful clue instance of every supported variant for the given
// categories and solution.
func Enumerate(categories []core.Category, solution core.Solution) []clue.Clue {
	ordered := make([]core.Category, len(categories))
	copy(ordered, categories)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	var ordCats []core.Category
	for _, c := range categories {
		if c.Kind == core.KindOrdinal {
			ordCats = append(ordCats, c)
		}
	}

	var out []clue.Clue
	out = append(out, binaryClues(ordered, solution)...)
	out = append(out, superlativeClues(categories, ordCats, solution)...)
	out = append(out, ordinalClues(categories, ordCats, solution)...)
	out = append(out, unaryClues(categories, ordCats, solution)...)
	if len(ordCats) >= 2 {
		out = append(out, crossOrdinalClues(ordCats, solution)...)
	}
	return out
}

func binaryClues(ordered []core.Category, solution core.Solution) []clue.Clue {
	var out []clue.Clue
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			c1, c2 := ordered[i], ordered[j]
			for _, v1 := range c1.Values {
				for _, v2 := range c2.Values {
					i1 := clue.ItemRef{Category: c1.ID, Value: v1}
					i2 := clue.ItemRef{Category: c2.ID, Value: v2}
					if solution.SameEntity(c1.ID, v1, c2.ID, v2) {
						out = append(out, clue.Binary(clue.OpIS, i1, i2))
					} else {
						out = append(out, clue.Binary(clue.OpISNOT, i1, i2))
					}
				}
			}
		}
	}
	return out
}

func superlativeClues(categories, ordCats []core.Category, solution core.Solution) []clue.Clue {
	var out []clue.Clue
	for _, ord := range ordCats {
		if len(ord.Values) == 0 {
			continue
		}
		min, max := ord.Values[0], ord.Values[len(ord.Values)-1]
		for _, t := range categories {
			if t.ID == ord.ID {
				continue
			}
			for _, v := range t.Values {
				target := clue.ItemRef{Category: t.ID, Value: v}
				ordVal, ok := solution.ValueFor(t.ID, v, ord.ID)
				if !ok {
					continue
				}
				if ordVal == min {
					out = append(out, clue.Superlative(clue.OpMin, target, ord.ID))
					out = append(out, clue.Superlative(clue.OpNotMax, target, ord.ID))
				} else if ordVal == max {
					out = append(out, clue.Superlative(clue.OpMax, target, ord.ID))
					out = append(out, clue.Superlative(clue.OpNotMin, target, ord.ID))
				} else {
					out = append(out, clue.Superlative(clue.OpNotMin, target, ord.ID))
					out = append(out, clue.Superlative(clue.OpNotMax, target, ord.ID))
				}
			}
		}
	}
	return out
}

// entities lists every (category,value) pair drawn from non-ord categories, one per entity,
// identified canonically by the base category's value (categories[0]).
func entities(categories []core.Category, ordCat string, solution core.Solution) []map[string]core.Value {
	base := categories[0]
	var out []map[string]core.Value
	for _, baseVal := range base.Values {
		ent := map[string]core.Value{base.ID: baseVal}
		for _, c := range categories {
			if c.ID == base.ID || c.ID == ordCat {
				continue
			}
			if v, ok := solution.ValueFor(base.ID, baseVal, c.ID); ok {
				ent[c.ID] = v
			}
		}
		out = append(out, ent)
	}
	return out
}

func ordinalClues(categories, ordCats []core.Category, solution core.Solution) []clue.Clue {
	var out []clue.Clue
	for _, ord := range ordCats {
		ents := entities(categories, ord.ID, solution)
		for i := 0; i < len(ents); i++ {
			for j := 0; j < len(ents); j++ {
				if i == j {
					continue
				}
				i1, ok1 := pickRef(categories, ord.ID, ents[i])
				i2, ok2 := pickRef(categories, ord.ID, ents[j])
				if !ok1 || !ok2 {
					continue
				}
				base := categories[0]
				v1, _ := solution.ValueFor(base.ID, ents[i][base.ID], ord.ID)
				v2, _ := solution.ValueFor(base.ID, ents[j][base.ID], ord.ID)
				r1, _ := rankOf(ord, v1)
				r2, _ := rankOf(ord, v2)
				if r1 > r2 {
					out = append(out, clue.Ordinal(clue.OpGreaterThan, i1, i2, ord.ID))
				} else if r1 < r2 {
					out = append(out, clue.Ordinal(clue.OpLessThan, i1, i2, ord.ID))
				}
			}
		}
	}
	return out
}

// pickRef chooses a deterministic non-ordCat category to name this entity by: the lowest-ID
// category other than ordCat.
func pickRef(categories []core.Category, ordCat string, entity map[string]core.Value) (clue.ItemRef, bool) {
	var candidates []core.Category
	for _, c := range categories {
		if c.ID != ordCat {
			candidates = append(candidates, c)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
	if len(candidates) == 0 {
		return clue.ItemRef{}, false
	}
	c := candidates[0]
	v, ok := entity[c.ID]
	if !ok {
		return clue.ItemRef{}, false
	}
	return clue.ItemRef{Category: c.ID, Value: v}, true
}

func rankOf(ord core.Category, v core.Value) (int, bool) {
	for i, x := range ord.Values {
		if x == v {
			return i, true
		}
	}
	return 0, false
}

func unaryClues(categories, ordCats []core.Category, solution core.Solution) []clue.Clue {
	var out []clue.Clue
	for _, ord := range ordCats {
		if !allIntegers(ord.Values) {
			continue
		}
		for _, t := range categories {
			if t.ID == ord.ID {
				continue
			}
			for _, v := range t.Values {
				ordVal, ok := solution.ValueFor(t.ID, v, ord.ID)
				if !ok {
					continue
				}
				n, ok := asInt(ordVal)
				if !ok {
					continue
				}
				target := clue.ItemRef{Category: t.ID, Value: v}
				if n%2 == 0 {
					out = append(out, clue.Unary(clue.FilterIsEven, target, ord.ID))
				} else {
					out = append(out, clue.Unary(clue.FilterIsOdd, target, ord.ID))
				}
			}
		}
	}
	return out
}

func allIntegers(values []core.Value) bool {
	for _, v := range values {
		if _, ok := asInt(v); !ok {
			return false
		}
	}
	return true
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

// crossOrdinalClues emits, for each pair of distinct ORDINAL categories, a MATCH clue linking the
// entity at rank r of ordA to the entity at rank r of ordB (offset 0 both sides) when they
// coincide, else a NOT_MATCH clue. This is the baseline truthful emission the generator scores
// against other variants; only offset 0 is emitted, though the solver accepts any offset.
func crossOrdinalClues(ordCats []core.Category, solution core.Solution) []clue.Clue {
	var out []clue.Clue
	for i := 0; i < len(ordCats); i++ {
		for j := i + 1; j < len(ordCats); j++ {
			ordA, ordB := ordCats[i], ordCats[j]
			k := len(ordA.Values)
			if len(ordB.Values) < k {
				k = len(ordB.Values)
			}
			for r := 0; r < k; r++ {
				valA := ordA.Values[r]
				valB := ordB.Values[r]
				a1 := clue.CrossOrdinalAnchor{Item: clue.ItemRef{Category: ordA.ID, Value: valA}, OrdCat: ordA.ID, Offset: 0}
				a2 := clue.CrossOrdinalAnchor{Item: clue.ItemRef{Category: ordB.ID, Value: valB}, OrdCat: ordB.ID, Offset: 0}
				if solution.SameEntity(ordA.ID, valA, ordB.ID, valB) {
					out = append(out, clue.CrossOrdinal(clue.OpMatch, a1, a2))
				} else {
					out = append(out, clue.CrossOrdinal(clue.OpNotMatch, a1, a2))
				}
			}
		}
	}
	return out
}
