package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		input string
		want  uiMode
	}{
		{"", uiModeAuto},
		{"auto", uiModeAuto},
		{"on", uiModeOn},
		{"off", uiModeOff},
		{"  ON ", uiModeOn},
		{"Off", uiModeOff},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.input)
		if err != nil {
			t.Fatalf("readUIMode(%q) error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("readUIMode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestReadUIMode_Invalid(t *testing.T) {
	if _, err := readUIMode("yes"); err == nil {
		t.Fatalf("readUIMode(%q) expected error", "yes")
	}
}

func TestShouldUseTUI(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Fatalf("shouldUseTUI(on) = false, want true")
	}
	if shouldUseTUI(uiModeOff) {
		t.Fatalf("shouldUseTUI(off) = true, want false")
	}
}
