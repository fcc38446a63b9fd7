package main

import (
	"errors"
	"testing"

	"cablecheck/internal/classify"
	"cablecheck/internal/driver"
)

func resultWith(c classify.Classification) driver.FileResult {
	return driver.FileResult{Result: classify.Result{Classification: c}}
}

func TestBatchExitCode(t *testing.T) {
	cases := []struct {
		name    string
		results []driver.FileResult
		want    int
	}{
		{"empty", nil, 0},
		{"healthy", []driver.FileResult{resultWith(classify.USB2Data), resultWith(classify.ChargingCable)}, 0},
		{"damaged", []driver.FileResult{resultWith(classify.USB2Data), resultWith(classify.DamagedCable)}, 1},
		{"mismatch", []driver.FileResult{resultWith(classify.ConnectorMismatch)}, 1},
		{"load error", []driver.FileResult{{Path: "a.toml", Err: errors.New("boom")}}, 1},
	}
	for _, tc := range cases {
		if got := batchExitCode(tc.results); got != tc.want {
			t.Fatalf("batchExitCode(%s) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestBatchCounters(t *testing.T) {
	results := []driver.FileResult{
		resultWith(classify.USB2Data),
		resultWith(classify.DamagedCable),
		{Path: "a.toml", Err: errors.New("boom")},
	}
	if got := countDefective(results); got != 1 {
		t.Fatalf("countDefective = %d, want 1", got)
	}
	if got := countFailed(results); got != 1 {
		t.Fatalf("countFailed = %d, want 1", got)
	}
}
