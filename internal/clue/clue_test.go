package clue

import "testing"

func TestVariant_IdentityResolving(t *testing.T) {
	cases := map[Variant]bool{
		VariantBinary:       true,
		VariantOrdinal:      true,
		VariantCrossOrdinal: true,
		VariantSuperlative:  false,
		VariantUnary:        false,
	}
	for v, want := range cases {
		if got := v.IdentityResolving(); got != want {
			t.Errorf("%s.IdentityResolving() = %v, want %v", v, got, want)
		}
	}
}

func TestVariant_RequiresOrdinalCategory(t *testing.T) {
	cases := map[Variant]bool{
		VariantBinary:       false,
		VariantOrdinal:      true,
		VariantSuperlative:  true,
		VariantUnary:        true,
		VariantCrossOrdinal: true,
	}
	for v, want := range cases {
		if got := v.RequiresOrdinalCategory(); got != want {
			t.Errorf("%s.RequiresOrdinalCategory() = %v, want %v", v, got, want)
		}
	}
}

func TestAllVariants_IsStableAndComplete(t *testing.T) {
	all := AllVariants()
	if len(all) != 5 {
		t.Fatalf("expected 5 variants, got %d", len(all))
	}
	seen := map[Variant]bool{}
	for _, v := range all {
		seen[v] = true
	}
	for _, v := range []Variant{VariantBinary, VariantOrdinal, VariantSuperlative, VariantUnary, VariantCrossOrdinal} {
		if !seen[v] {
			t.Errorf("expected AllVariants to include %s", v)
		}
	}
}

func TestConstructors_PopulateCorrectPayload(t *testing.T) {
	b := Binary(OpIS, ItemRef{Category: "a", Value: 1}, ItemRef{Category: "b", Value: 2})
	if b.Variant != VariantBinary || b.Binary == nil {
		t.Error("expected Binary() to populate the Binary payload")
	}

	o := Ordinal(OpGreaterThan, ItemRef{Category: "a", Value: 1}, ItemRef{Category: "b", Value: 2}, "ord")
	if o.Variant != VariantOrdinal || o.Ordinal == nil {
		t.Error("expected Ordinal() to populate the Ordinal payload")
	}

	s := Superlative(OpMin, ItemRef{Category: "a", Value: 1}, "ord")
	if s.Variant != VariantSuperlative || s.Superlative == nil {
		t.Error("expected Superlative() to populate the Superlative payload")
	}

	u := Unary(FilterIsOdd, ItemRef{Category: "a", Value: 1}, "ord")
	if u.Variant != VariantUnary || u.Unary == nil {
		t.Error("expected Unary() to populate the Unary payload")
	}

	x := CrossOrdinal(OpMatch,
		CrossOrdinalAnchor{Item: ItemRef{Category: "a", Value: 1}, OrdCat: "ord1"},
		CrossOrdinalAnchor{Item: ItemRef{Category: "b", Value: 2}, OrdCat: "ord2"})
	if x.Variant != VariantCrossOrdinal || x.CrossOrdinal == nil {
		t.Error("expected CrossOrdinal() to populate the CrossOrdinal payload")
	}
}
