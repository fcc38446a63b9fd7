package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cablecheck/internal/classify"
)

const chargerObservation = `
[pins]
left = ["04 VBUS", "01 GND"]
right = []
`

const usb2Observation = `
[pins]
left = ["06 D+", "07 D-"]
right = ["06 D-", "07 D+"]
`

func TestAnalyzeFiles_KeepsArgumentOrder(t *testing.T) {
	tmp := t.TempDir()
	charger := filepath.Join(tmp, "charger.toml")
	if err := os.WriteFile(charger, []byte(chargerObservation), 0o600); err != nil {
		t.Fatalf("write charger.toml: %v", err)
	}
	usb2 := filepath.Join(tmp, "usb2.toml")
	if err := os.WriteFile(usb2, []byte(usb2Observation), 0o600); err != nil {
		t.Fatalf("write usb2.toml: %v", err)
	}
	broken := filepath.Join(tmp, "broken.toml")
	if err := os.WriteFile(broken, []byte("[pins]\nleft = [\"AUX1\"]\nright = []\n"), 0o600); err != nil {
		t.Fatalf("write broken.toml: %v", err)
	}

	// Deliberately not lexical order: results must follow the arguments.
	paths := []string{usb2, broken, charger}
	results, err := AnalyzeFiles(context.Background(), paths, nil, FilesOptions{Jobs: 2})
	if err != nil {
		t.Fatalf("AnalyzeFiles error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, want := range paths {
		if results[i].Path != want {
			t.Fatalf("results[%d].Path = %q, want %q", i, results[i].Path, want)
		}
	}
	if results[0].Result.Classification != classify.USB2Data {
		t.Fatalf("usb2 classification = %v, want %v",
			results[0].Result.Classification, classify.USB2Data)
	}
	if results[1].Err == nil {
		t.Fatalf("expected error result for %s", broken)
	}
	if results[2].Result.Classification != classify.ChargingCable {
		t.Fatalf("charger classification = %v, want %v",
			results[2].Result.Classification, classify.ChargingCable)
	}
}

func TestAnalyzeFiles_DirectoryCollectsTOML(t *testing.T) {
	tmp := t.TempDir()
	for _, name := range []string{"b.toml", "a.toml"} {
		if err := os.WriteFile(filepath.Join(tmp, name), []byte(chargerObservation), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.WriteFile(filepath.Join(tmp, "notes.txt"), []byte("ignored"), 0o600); err != nil {
		t.Fatalf("write notes.txt: %v", err)
	}

	results, err := AnalyzeFiles(context.Background(), []string{tmp}, nil, FilesOptions{})
	if err != nil {
		t.Fatalf("AnalyzeFiles error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Directory expansion is lexical.
	if filepath.Base(results[0].Path) != "a.toml" || filepath.Base(results[1].Path) != "b.toml" {
		t.Fatalf("paths = %q/%q, want a.toml/b.toml", results[0].Path, results[1].Path)
	}
}

func TestAnalyzeFiles_NoObservations(t *testing.T) {
	_, err := AnalyzeFiles(context.Background(), []string{t.TempDir()}, nil, FilesOptions{})
	if err == nil {
		t.Fatalf("expected error for empty directory")
	}
	if !strings.Contains(err.Error(), "no observation files") {
		t.Fatalf("error = %v, want no observation files", err)
	}
}

func TestAnalyzeFiles_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AnalyzeFiles(ctx, []string{t.TempDir()}, nil, FilesOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}
