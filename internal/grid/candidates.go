package grid

import "strconv"

// Candidates is a bitmask of still-possible value indices within a category of up to 64 values.
// Bit i corresponds to value index i. This is the row primitive underlying `poss(c1,v1,c2,*)`
// for a fixed (c1,v1,c2): one bit per v2.
type Candidates uint64

// full returns a Candidates with the first k bits set.
func full(k int) Candidates {
	if k >= 64 {
		return ^Candidates(0)
	}
	return Candidates(1<<uint(k)) - 1
}

// Has returns true if index i is still a candidate.
func (c Candidates) Has(i int) bool {
	return c&(1<<uint(i)) != 0
}

// Set adds index i and returns the new bitmask.
func (c Candidates) Set(i int) Candidates {
	return c | (1 << uint(i))
}

// Clear removes index i and returns the new bitmask. Reports whether it actually changed c.
func (c Candidates) Clear(i int) (Candidates, bool) {
	if !c.Has(i) {
		return c, false
	}
	return c &^ (1 << uint(i)), true
}

// Count returns the number of set bits.
func (c Candidates) Count() int {
	n := 0
	for x := c; x != 0; x &= x - 1 {
		n++
	}
	return n
}

// Only returns the single index if exactly one bit is set, otherwise (0, false).
func (c Candidates) Only() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	for i := 0; i < 64; i++ {
		if c.Has(i) {
			return i, true
		}
	}
	return 0, false
}

// ToSlice returns the set indices in ascending order.
func (c Candidates) ToSlice() []int {
	var out []int
	for i := 0; i < 64; i++ {
		if c.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// IsEmpty reports whether no bits are set — a contradiction when it occurs on a live row.
func (c Candidates) IsEmpty() bool {
	return c == 0
}

// Intersect returns bits present in both c and other.
func (c Candidates) Intersect(other Candidates) Candidates {
	return c & other
}

func (c Candidates) String() string {
	return strconv.FormatUint(uint64(c), 2)
}
