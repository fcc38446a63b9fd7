package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"cablecheck/internal/pin"
)

// ErrBoardNameMissing indicates that [board].name is missing in a profile file.
var ErrBoardNameMissing = errors.New("missing [board].name")

type profileFile struct {
	Board struct {
		Name string `toml:"name"`
	} `toml:"board"`
	Remap []remapEntry `toml:"remap"`
}

type remapEntry struct {
	Side   string `toml:"side"`
	Label  string `toml:"label"`
	Signal string `toml:"signal"`
}

// Load parses a board profile file:
//
//	[board]
//	name = "rev-c"
//
//	[[remap]]
//	side = "right"
//	label = "D-"
//	signal = "D+"
//
// Each [[remap]] entry declares that the silkscreen label on that side is
// wired to the given logical signal. Conflicting declarations for one label
// are a configuration defect and fail the load; translation never has to
// guess later.
func Load(path string) (*Profile, error) {
	var cfg profileFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	name := strings.TrimSpace(cfg.Board.Name)
	if !meta.IsDefined("board", "name") || name == "" {
		return nil, fmt.Errorf("%s: %w", path, ErrBoardNameMissing)
	}

	p := &Profile{Name: name, remap: make(map[remapKey]pin.Pin, len(cfg.Remap))}
	for i, entry := range cfg.Remap {
		side, ok := pin.ParseSide(strings.TrimSpace(entry.Side))
		if !ok {
			return nil, fmt.Errorf("%s: remap %d: unknown side %q", path, i+1, entry.Side)
		}
		label := strings.TrimSpace(entry.Label)
		if !sideHasLabel(side, label) {
			return nil, fmt.Errorf("%s: remap %d: side %s has no pin labeled %q: %w", path, i+1, side, label, ErrInvalidPinLabel)
		}
		signal, ok := pin.Parse(strings.TrimSpace(entry.Signal))
		if !ok {
			return nil, fmt.Errorf("%s: remap %d: unknown signal %q: %w", path, i+1, entry.Signal, ErrInvalidPinLabel)
		}
		key := remapKey{side: side, label: label}
		if prev, exists := p.remap[key]; exists && prev != signal {
			return nil, fmt.Errorf("%s: remap %d: %s pin %q already wired to %v: %w", path, i+1, side, label, prev, ErrDuplicatePinAssignment)
		}
		p.remap[key] = signal
	}
	return p, nil
}
