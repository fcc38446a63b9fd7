package pin

import (
	"testing"
)

func TestSet_Basics(t *testing.T) {
	s := SetOf(DPlus, DMinus)
	if !s.Has(DPlus) || !s.Has(DMinus) {
		t.Fatalf("SetOf(D+, D-) is missing a member: %v", s)
	}
	if s.Has(GND) {
		t.Fatalf("SetOf(D+, D-) unexpectedly contains GND")
	}
	if s.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", s.Count())
	}
	if s.Without(DPlus).Count() != 1 {
		t.Fatalf("Without(D+) should leave one pin")
	}
	if !SetOf().Empty() {
		t.Fatalf("SetOf() should be empty")
	}
}

func TestSet_InsertionOrderIrrelevant(t *testing.T) {
	a := SetOf(TX1Plus, RX2Minus, GND, DPlus)
	b := SetOf(DPlus, GND, RX2Minus, TX1Plus)
	if a != b {
		t.Fatalf("sets built in different orders differ: %v vs %v", a, b)
	}
}

func TestSet_PinsAscending(t *testing.T) {
	s := SetOf(RX2Minus, GND, TX1Plus, DMinus)
	pins := s.Pins()
	want := []Pin{GND, DMinus, TX1Plus, RX2Minus}
	if len(pins) != len(want) {
		t.Fatalf("Pins() = %v, want %v", pins, want)
	}
	for i := range want {
		if pins[i] != want[i] {
			t.Fatalf("Pins()[%d] = %v, want %v", i, pins[i], want[i])
		}
	}
}

func TestSet_UnionIntersect(t *testing.T) {
	u := Lane1.Union(Lane2)
	if u != SuperSpeed {
		t.Fatalf("Lane1 ∪ Lane2 = %v, want SuperSpeed %v", u, SuperSpeed)
	}
	if got := Lane1.Intersect(Lane2); !got.Empty() {
		t.Fatalf("Lane1 ∩ Lane2 = %v, want empty", got)
	}
	mixed := SetOf(TX1Plus, DPlus, VBus)
	if got := mixed.Intersect(SuperSpeed); got != SetOf(TX1Plus) {
		t.Fatalf("Intersect(SuperSpeed) = %v, want {TX1+}", got)
	}
}

func TestSet_String(t *testing.T) {
	if got := SetOf().String(); got != "{}" {
		t.Fatalf("empty set String() = %q, want {}", got)
	}
	if got := SetOf(DMinus, DPlus).String(); got != "{D+, D-}" {
		t.Fatalf("String() = %q, want {D+, D-}", got)
	}
}
