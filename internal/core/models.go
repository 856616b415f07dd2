// Package core holds the data model shared by every puzzle subsystem: categories and their
// values, the hidden solution, the proof chain, and the single error kind the generator raises.
package core

import (
	"fmt"

	"logicgrid-api/internal/clue"
)

// CategoryKind distinguishes categories whose values carry an intrinsic order from those that
// don't. Only ORDINAL categories may be the subject of Ordinal, Superlative, Unary, or
// CrossOrdinal clues.
type CategoryKind string

const (
	KindNominal CategoryKind = "nominal"
	KindOrdinal CategoryKind = "ordinal"
)

// Value is a single category label: a string or a number (float64 when decoded from JSON; int is
// also accepted). All of these are comparable, so a Value can be used directly as a map key.
type Value = any

// Category is an identifier, a kind tag, and an ordered sequence of K unique value labels. For
// an ORDINAL category the values must be numeric and sorted ascending — their index in Values IS
// their ordinal rank.
type Category struct {
	ID     string       `json:"id"`
	Kind   CategoryKind `json:"kind"`
	Values []Value      `json:"values"`
}

// Solution is the hidden bijective assignment: for every non-base category, a pair of maps
// between the base category's values and that category's values. Entities are never materialized
// as a separate type — they are implicit in "the base value that keys every other category's
// forward map".
type Solution struct {
	// BaseCategory is categories[0].ID, the category every entity is keyed by.
	BaseCategory string
	// Forward maps categoryID -> baseValue -> categoryValue.
	Forward map[string]map[Value]Value
	// Reverse maps categoryID -> categoryValue -> baseValue. Built once alongside Forward and
	// required by the enumerator and scorer to go from "this value" back to "this entity".
	Reverse map[string]map[Value]Value
}

// ValueFor returns the value of category cat held by the entity identified by (baseCat, baseVal).
// baseCat need not be the Solution's BaseCategory.
func (s Solution) ValueFor(baseCat string, baseVal Value, cat string) (Value, bool) {
	base := baseVal
	if baseCat != s.BaseCategory {
		rev, ok := s.Reverse[baseCat]
		if !ok {
			return nil, false
		}
		b, ok := rev[baseVal]
		if !ok {
			return nil, false
		}
		base = b
	}
	if cat == s.BaseCategory {
		return base, true
	}
	fwd, ok := s.Forward[cat]
	if !ok {
		return nil, false
	}
	v, ok := fwd[base]
	return v, ok
}

// SameEntity reports whether (cat1,val1) and (cat2,val2) are held by the same entity.
func (s Solution) SameEntity(cat1 string, val1 Value, cat2 string, val2 Value) bool {
	v, ok := s.ValueFor(cat1, val1, cat2)
	return ok && v == val2
}

// TargetFact is the (cat1,val1,cat2) triple whose answer — the value of cat2 held by the entity
// identified by (cat1,val1) — the puzzle is built to make deducible last.
type TargetFact struct {
	Category1 string `json:"category1"`
	Value1    Value  `json:"value1"`
	Category2 string `json:"category2"`
}

// ProofStep pairs a clue with the number of grid-cell changes it caused when applied.
type ProofStep struct {
	Clue       clue.Clue `json:"clue"`
	Deductions int       `json:"deductions"`
}

// Puzzle bundles everything a generatePuzzle call produces: the hidden solution, the clue set
// used to find it, the ordered proof chain that finds it, the originating categories, and the
// target fact the proof chain resolves last.
type Puzzle struct {
	PuzzleID   string      `json:"puzzle_id"`
	Categories []Category  `json:"categories"`
	Solution   Solution    `json:"-"`
	Clues      []clue.Clue `json:"clues"`
	Proof      []ProofStep `json:"proof"`
	Target     TargetFact  `json:"target"`
}

// ConfigurationError is the single error kind the core raises: invalid inputs or unreachable
// generation goals. It surfaces from Grid construction and from
// Generator.GeneratePuzzle/GetClueCountBounds; the generator's validation and backtracking helpers
// build it and those entry points pass it through unchanged.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
