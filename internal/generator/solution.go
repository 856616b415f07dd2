package generator

import "logicgrid-api/internal/core"

// buildSolution treats categories[0] as the base category. For each subsequent category it
// uniformly shuffles a copy of that category's values with the PRNG and zips the shuffled values
// against the base category's values, recording both the forward (base value -> category value)
// and reverse (category value -> base value) maps.
func buildSolution(r *prng, categories []core.Category) core.Solution {
	base := categories[0]
	sol := core.Solution{
		BaseCategory: base.ID,
		Forward:      make(map[string]map[core.Value]core.Value, len(categories)-1),
		Reverse:      make(map[string]map[core.Value]core.Value, len(categories)-1),
	}
	for _, c := range categories[1:] {
		shuffled := make([]core.Value, len(c.Values))
		copy(shuffled, c.Values)
		shuffle(r, shuffled)

		fwd := make(map[core.Value]core.Value, len(base.Values))
		rev := make(map[core.Value]core.Value, len(base.Values))
		for i, baseVal := range base.Values {
			fwd[baseVal] = shuffled[i]
			rev[shuffled[i]] = baseVal
		}
		sol.Forward[c.ID] = fwd
		sol.Reverse[c.ID] = rev
	}
	return sol
}
