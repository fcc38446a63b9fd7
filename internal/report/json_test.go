package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"cablecheck/internal/classify"
	"cablecheck/internal/pin"
)

func TestBuildResultJSON(t *testing.T) {
	r := classify.Classify(classify.Observation{
		Active:       pin.SetOf(pin.TX1Plus, pin.DPlus, pin.DMinus),
		Left:         pin.TypeC30,
		Right:        pin.TypeA30,
		LeftChecked:  []string{"07 D-", "06 D+"},
		RightChecked: []string{"11 TX1+"},
	})

	out := BuildResultJSON(&r)
	if out.Classification != "DAMAGED_CABLE" {
		t.Fatalf("Classification = %q, want DAMAGED_CABLE", out.Classification)
	}
	if !out.Defective {
		t.Fatal("Defective = false, want true")
	}
	if out.LeftConnector != "Type C 3.0" || out.RightConnector != "Type A 3.0" {
		t.Fatalf("connectors = %q/%q", out.LeftConnector, out.RightConnector)
	}
	if len(out.Lanes) != 2 || out.Lanes[0].State != "INCOMPLETE" || out.Lanes[1].State != "MISSING" {
		t.Fatalf("lanes = %+v", out.Lanes)
	}
	if len(out.BrokenPairs) == 0 || out.BrokenPairs[0].Code != "LANE1_TX" || out.BrokenPairs[0].Severity != "FAULT" {
		t.Fatalf("broken pairs = %+v", out.BrokenPairs)
	}
	if len(out.CheckedLeft) != 2 || out.CheckedLeft[0] != "06 D+" {
		t.Fatalf("checked left = %v, want sorted", out.CheckedLeft)
	}
}

func TestWriteJSON_OmitsEmptyBlocks(t *testing.T) {
	r := classify.Classify(classify.Observation{
		Active: pin.SetOf(pin.DPlus, pin.DMinus),
	})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, &r); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output does not decode: %v", err)
	}
	if got := decoded["classification"]; got != "USB2_DATA" {
		t.Fatalf("classification = %v, want USB2_DATA", got)
	}
	for _, key := range []string{"broken_pairs", "warnings", "left_connector", "orientation_note", "checked_left"} {
		if _, present := decoded[key]; present {
			t.Fatalf("key %q should be omitted when empty", key)
		}
	}
	if _, present := decoded["capabilities"]; !present {
		t.Fatal("capabilities block missing")
	}
}
