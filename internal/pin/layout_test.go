package pin

import (
	"testing"
)

func TestLayout_RowsMatchBoard(t *testing.T) {
	wantLeft := []string{
		"GND", "TX2+", "TX2-", "VBUS", "CC2", "D+",
		"D-", "SBU2", "VBUS", "RX1-", "RX1+", "GND",
	}
	wantRight := []string{
		"GND", "RX2+", "RX2-", "VBUS", "SBU1", "D-",
		"D+", "CC1", "VBUS", "TX1-", "TX1+", "GND",
	}

	for _, tc := range []struct {
		side Side
		want []string
	}{
		{Left, wantLeft},
		{Right, wantRight},
	} {
		layout := Layout(tc.side)
		if len(layout) != PositionsPerSide {
			t.Fatalf("%s layout has %d positions, want %d", tc.side, len(layout), PositionsPerSide)
		}
		for i, pos := range layout {
			if pos.Index != uint8(i+1) {
				t.Fatalf("%s position %d has index %d", tc.side, i, pos.Index)
			}
			if pos.Label != tc.want[i] {
				t.Fatalf("%s position %d = %q, want %q", tc.side, i+1, pos.Label, tc.want[i])
			}
		}
	}
}

func TestLayout_EveryLabelParses(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		for _, pos := range Layout(side) {
			if _, ok := Parse(pos.Label); !ok {
				t.Fatalf("%s position %02d label %q does not parse", side, pos.Index, pos.Label)
			}
		}
	}
}

func TestLayout_DuplicatePowerPins(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		counts := map[string]int{}
		for _, pos := range Layout(side) {
			counts[pos.Label]++
		}
		if counts["GND"] != 2 || counts["VBUS"] != 2 {
			t.Fatalf("%s row: GND=%d VBUS=%d, want 2 each", side, counts["GND"], counts["VBUS"])
		}
		for label, n := range counts {
			if label != "GND" && label != "VBUS" && n != 1 {
				t.Fatalf("%s row: label %q appears %d times, want 1", side, label, n)
			}
		}
	}
}

func TestLabelAt(t *testing.T) {
	if got, ok := LabelAt(Right, 2); !ok || got != "RX2+" {
		t.Fatalf("LabelAt(right, 2) = %q, %v; want RX2+, true", got, ok)
	}
	if got, ok := LabelAt(Left, 12); !ok || got != "GND" {
		t.Fatalf("LabelAt(left, 12) = %q, %v; want GND, true", got, ok)
	}
	for _, bad := range []uint8{0, 13, 200} {
		if _, ok := LabelAt(Left, bad); ok {
			t.Fatalf("LabelAt(left, %d) = ok, want out of range", bad)
		}
	}
}

func TestParseSide(t *testing.T) {
	if s, ok := ParseSide("left"); !ok || s != Left {
		t.Fatalf("ParseSide(left) = %v, %v", s, ok)
	}
	if s, ok := ParseSide("right"); !ok || s != Right {
		t.Fatalf("ParseSide(right) = %v, %v", s, ok)
	}
	for _, bad := range []string{"", "Left", "RIGHT", "top"} {
		if _, ok := ParseSide(bad); ok {
			t.Fatalf("ParseSide(%q) = ok, want false", bad)
		}
	}
}
