package pin

import (
	"testing"
)

// The classifier's lane arithmetic depends on the lanes partitioning the
// SuperSpeed group exactly; guard that here, next to the data.
func TestLanes_PartitionSuperSpeed(t *testing.T) {
	if !Lane1.Intersect(Lane2).Empty() {
		t.Fatalf("Lane1 and Lane2 overlap: %v", Lane1.Intersect(Lane2))
	}
	if Lane1.Union(Lane2) != SuperSpeed {
		t.Fatalf("Lane1 ∪ Lane2 = %v, want %v", Lane1.Union(Lane2), SuperSpeed)
	}
	if Lane1.Count() != 4 || Lane2.Count() != 4 || SuperSpeed.Count() != 8 {
		t.Fatalf("lane sizes = %d/%d, SuperSpeed = %d; want 4/4 and 8",
			Lane1.Count(), Lane2.Count(), SuperSpeed.Count())
	}
}

func TestLaneHalves_PartitionLanes(t *testing.T) {
	cases := []struct {
		name   string
		tx, rx Set
		lane   Set
	}{
		{"lane1", Lane1TX, Lane1RX, Lane1},
		{"lane2", Lane2TX, Lane2RX, Lane2},
	}
	for _, tc := range cases {
		if !tc.tx.Intersect(tc.rx).Empty() {
			t.Fatalf("%s: TX and RX halves overlap", tc.name)
		}
		if tc.tx.Union(tc.rx) != tc.lane {
			t.Fatalf("%s: TX ∪ RX = %v, want %v", tc.name, tc.tx.Union(tc.rx), tc.lane)
		}
		if tc.tx.Count() != 2 || tc.rx.Count() != 2 {
			t.Fatalf("%s: half sizes %d/%d, want 2/2", tc.name, tc.tx.Count(), tc.rx.Count())
		}
	}
}

func TestGroups_DisjointFromSuperSpeed(t *testing.T) {
	for _, g := range []Set{USB2Pair, CCPins, SBUPins} {
		if !g.Intersect(SuperSpeed).Empty() {
			t.Fatalf("group %v overlaps SuperSpeed", g)
		}
		if g.Count() != 2 {
			t.Fatalf("group %v has %d pins, want 2", g, g.Count())
		}
	}
}
