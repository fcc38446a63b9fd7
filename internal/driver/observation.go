package driver

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"cablecheck/internal/board"
	"cablecheck/internal/observ"
)

// observationFile mirrors the on-disk TOML shape of one recorded session.
type observationFile struct {
	Cable cableSection `toml:"cable"`
	Pins  pinsSection  `toml:"pins"`
}

type cableSection struct {
	LeftConnector  string `toml:"left_connector"`
	RightConnector string `toml:"right_connector"`
}

type pinsSection struct {
	Left  []string `toml:"left"`
	Right []string `toml:"right"`
}

// LoadObservation reads a recorded session from a TOML file. The [pins]
// table is required, though both of its lists may be empty; the [cable]
// table and its connector names are optional.
func LoadObservation(path string) (SessionInput, error) {
	var file observationFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return SessionInput{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("pins") {
		return SessionInput{}, fmt.Errorf("%s: missing [pins]", path)
	}
	return SessionInput{
		LeftChecked:    file.Pins.Left,
		RightChecked:   file.Pins.Right,
		LeftConnector:  file.Cable.LeftConnector,
		RightConnector: file.Cable.RightConnector,
	}, nil
}

// AnalyzeFile loads one observation file and runs it through the usual
// session pipeline. The load shows up as its own timer phase.
func AnalyzeFile(path string, profile *board.Profile, opts AnalyzeOptions) (*AnalyzeResult, error) {
	var timer *observ.Timer
	if opts.EnableTimings {
		timer = observ.NewTimer()
	}

	loadIdx := -1
	if timer != nil {
		loadIdx = timer.Begin("load")
	}
	in, err := LoadObservation(path)
	if timer != nil && loadIdx >= 0 {
		note := ""
		if err != nil {
			note = "error"
		}
		timer.End(loadIdx, note)
	}
	if err != nil {
		return nil, err
	}

	in.Profile = profile
	res, err := analyzeSession(in, timer)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}
