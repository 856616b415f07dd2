package grid

import "testing"

func TestCandidates_SetHasClear(t *testing.T) {
	c := full(4)
	for i := 0; i < 4; i++ {
		if !c.Has(i) {
			t.Errorf("expected bit %d set in a full mask", i)
		}
	}
	c2, changed := c.Clear(2)
	if !changed {
		t.Error("expected Clear to report a change")
	}
	if c2.Has(2) {
		t.Error("expected bit 2 cleared")
	}
	if _, changed := c2.Clear(2); changed {
		t.Error("expected Clear on an already-clear bit to report no change")
	}
}

func TestCandidates_Count(t *testing.T) {
	c := full(5)
	if c.Count() != 5 {
		t.Fatalf("expected count 5, got %d", c.Count())
	}
	c, _ = c.Clear(0)
	c, _ = c.Clear(4)
	if c.Count() != 3 {
		t.Errorf("expected count 3 after two clears, got %d", c.Count())
	}
}

func TestCandidates_Only(t *testing.T) {
	var c Candidates
	c = c.Set(3)
	idx, ok := c.Only()
	if !ok || idx != 3 {
		t.Errorf("expected Only to report (3,true), got (%d,%v)", idx, ok)
	}
	c = c.Set(1)
	if _, ok := c.Only(); ok {
		t.Error("expected Only to fail with two bits set")
	}
}

func TestCandidates_IsEmpty(t *testing.T) {
	var c Candidates
	if !c.IsEmpty() {
		t.Error("expected zero-value Candidates to be empty")
	}
	c = c.Set(0)
	if c.IsEmpty() {
		t.Error("expected non-zero Candidates to be non-empty")
	}
}

func TestCandidates_ToSlice(t *testing.T) {
	c := full(3)
	c, _ = c.Clear(1)
	got := c.ToSlice()
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestCandidates_Intersect(t *testing.T) {
	a := full(4)
	b := Candidates(0).Set(1).Set(3)
	got := a.Intersect(b)
	if got.Count() != 2 || !got.Has(1) || !got.Has(3) {
		t.Errorf("expected intersection {1,3}, got %v", got.ToSlice())
	}
}
