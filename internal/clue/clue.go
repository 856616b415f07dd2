// Package clue defines the closed set of clue variants a puzzle can be built from.
//
// Clues are a tagged union: a Clue's Variant field says which of the typed payload fields is
// populated. Every site that needs to act on a clue (the solver's dispatch, the enumerator's
// emission, the scorer's complexity table, a session-side renderer) switches on Variant and must
// handle all five cases — adding a sixth variant means touching all four sites, by design.
package clue

// Variant names one of the five supported clue shapes.
type Variant string

const (
	VariantBinary       Variant = "binary"
	VariantOrdinal      Variant = "ordinal"
	VariantSuperlative  Variant = "superlative"
	VariantUnary        Variant = "unary"
	VariantCrossOrdinal Variant = "cross_ordinal"
)

// AllVariants lists the closed set in a stable order.
func AllVariants() []Variant {
	return []Variant{VariantBinary, VariantOrdinal, VariantSuperlative, VariantUnary, VariantCrossOrdinal}
}

// ItemRef names one value within one category: the pair (category, value).
type ItemRef struct {
	Category string `json:"category"`
	Value    any    `json:"value"`
}

// BinaryOp is the operator of a Binary clue.
type BinaryOp string

const (
	OpIS     BinaryOp = "IS"
	OpISNOT  BinaryOp = "IS_NOT"
)

// BinaryClue asserts that (c1,v1) and (c2,v2) do, or do not, name the same entity.
type BinaryClue struct {
	Op BinaryOp `json:"op"`
	I1 ItemRef  `json:"i1"`
	I2 ItemRef  `json:"i2"`
}

// OrdinalOp is the comparator of an Ordinal clue.
type OrdinalOp string

const (
	OpGreaterThan    OrdinalOp = "GREATER_THAN"
	OpLessThan       OrdinalOp = "LESS_THAN"
	OpNotGreaterThan OrdinalOp = "NOT_GREATER_THAN" // <=
	OpNotLessThan    OrdinalOp = "NOT_LESS_THAN"    // >=
)

// OrdinalClue compares the OrdCat-rank of two distinct entities, identified by I1 and I2, neither
// of which may itself belong to OrdCat.
type OrdinalClue struct {
	Op     OrdinalOp `json:"op"`
	I1     ItemRef   `json:"i1"`
	I2     ItemRef   `json:"i2"`
	OrdCat string    `json:"ord_cat"`
}

// SuperlativeOp is the extreme a Superlative clue asserts (or denies).
type SuperlativeOp string

const (
	OpMin    SuperlativeOp = "MIN"
	OpMax    SuperlativeOp = "MAX"
	OpNotMin SuperlativeOp = "NOT_MIN"
	OpNotMax SuperlativeOp = "NOT_MAX"
)

// SuperlativeClue asserts that Target attains (or does not attain) the minimal/maximal value of
// OrdCat among all entities.
type SuperlativeClue struct {
	Op     SuperlativeOp `json:"op"`
	Target ItemRef       `json:"target"`
	OrdCat string        `json:"ord_cat"`
}

// UnaryFilter is the parity a Unary clue asserts.
type UnaryFilter string

const (
	FilterIsOdd  UnaryFilter = "IS_ODD"
	FilterIsEven UnaryFilter = "IS_EVEN"
)

// UnaryClue asserts that Target's value in OrdCat (which must be all-integer) has the given
// parity.
type UnaryClue struct {
	Filter UnaryFilter `json:"filter"`
	Target ItemRef     `json:"target"`
	OrdCat string      `json:"ord_cat"`
}

// CrossOrdinalOp is the relation a CrossOrdinal clue asserts between two derived entities.
type CrossOrdinalOp string

const (
	OpMatch    CrossOrdinalOp = "MATCH"
	OpNotMatch CrossOrdinalOp = "NOT_MATCH"
)

// CrossOrdinalAnchor names an entity via (Item, OrdCat-rank-of-Item + Offset): the derived entity
// is whichever one sits at that rank within OrdCat.
type CrossOrdinalAnchor struct {
	Item   ItemRef `json:"item"`
	OrdCat string  `json:"ord_cat"`
	Offset int     `json:"offset"`
}

// CrossOrdinalClue asserts that the two entities derived from Anchor1 and Anchor2 are the same
// (MATCH) or distinct (NOT_MATCH). An offset that runs off the end of its OrdCat's rank range
// makes that anchor vacuously unsatisfiable.
type CrossOrdinalClue struct {
	Op      CrossOrdinalOp     `json:"op"`
	Anchor1 CrossOrdinalAnchor `json:"anchor1"`
	Anchor2 CrossOrdinalAnchor `json:"anchor2"`
}

// Clue is the tagged union. Exactly one of the payload fields matching Variant is populated.
type Clue struct {
	Variant      Variant           `json:"variant"`
	Binary       *BinaryClue       `json:"binary,omitempty"`
	Ordinal      *OrdinalClue      `json:"ordinal,omitempty"`
	Superlative  *SuperlativeClue  `json:"superlative,omitempty"`
	Unary        *UnaryClue        `json:"unary,omitempty"`
	CrossOrdinal *CrossOrdinalClue `json:"cross_ordinal,omitempty"`
}

// Binary builds a Binary clue.
func Binary(op BinaryOp, i1, i2 ItemRef) Clue {
	return Clue{Variant: VariantBinary, Binary: &BinaryClue{Op: op, I1: i1, I2: i2}}
}

// Ordinal builds an Ordinal clue.
func Ordinal(op OrdinalOp, i1, i2 ItemRef, ordCat string) Clue {
	return Clue{Variant: VariantOrdinal, Ordinal: &OrdinalClue{Op: op, I1: i1, I2: i2, OrdCat: ordCat}}
}

// Superlative builds a Superlative clue.
func Superlative(op SuperlativeOp, target ItemRef, ordCat string) Clue {
	return Clue{Variant: VariantSuperlative, Superlative: &SuperlativeClue{Op: op, Target: target, OrdCat: ordCat}}
}

// Unary builds a Unary clue.
func Unary(filter UnaryFilter, target ItemRef, ordCat string) Clue {
	return Clue{Variant: VariantUnary, Unary: &UnaryClue{Filter: filter, Target: target, OrdCat: ordCat}}
}

// CrossOrdinal builds a CrossOrdinal clue.
func CrossOrdinal(op CrossOrdinalOp, a1, a2 CrossOrdinalAnchor) Clue {
	return Clue{Variant: VariantCrossOrdinal, CrossOrdinal: &CrossOrdinalClue{Op: op, Anchor1: a1, Anchor2: a2}}
}

// Descriptor carries the per-variant metadata the scorer's complexity table and a session-side
// renderer both need. It mirrors the "registry of descriptors keyed by a stable slug" idiom used
// elsewhere in this codebase for tagged-union dispatch tables.
type Descriptor struct {
	Variant Variant
	Name    string
	// The scorer's complexity bonus is not carried here: Binary IS_NOT has a different multiplier
	// from Binary IS, so that table is keyed by op as well as variant — see complexityMultiplier in
	// the generator package.
}

// IdentityResolving reports whether a variant can, on its own, pin down which entity is which —
// the feasibility guard requires at least one such variant stay allowed.
func (v Variant) IdentityResolving() bool {
	switch v {
	case VariantBinary, VariantOrdinal, VariantCrossOrdinal:
		return true
	default:
		return false
	}
}

// RequiresOrdinalCategory reports whether a variant's truthful emission requires at least one
// ORDINAL category to exist at all.
func (v Variant) RequiresOrdinalCategory() bool {
	switch v {
	case VariantOrdinal, VariantSuperlative, VariantUnary, VariantCrossOrdinal:
		return true
	default:
		return false
	}
}
