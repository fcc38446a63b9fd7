package report

import (
	"encoding/json"
	"io"

	"cablecheck/internal/classify"
)

// CapabilitiesJSON mirrors the Capabilities block of the text report.
type CapabilitiesJSON struct {
	USB2Data      string `json:"usb2_data"`
	PowerDelivery string `json:"power_delivery"`
	SuperSpeed    string `json:"superspeed"`
	AltMode       string `json:"alt_mode"`
	ConfigChannel string `json:"config_channel"`
	SSDetected    int    `json:"ss_pins_detected"`
	SSExpected    int    `json:"ss_pins_expected"`
	CCLines       int    `json:"cc_lines"`
	SBULines      int    `json:"sbu_lines"`
	VBusCount     int    `json:"vbus_count"`
	GNDCount      int    `json:"gnd_count"`
}

// LaneJSON is one SuperSpeed lane status.
type LaneJSON struct {
	Name       string `json:"name"`
	State      string `json:"state"`
	ActivePins int    `json:"active_pins"`
}

// DefectJSON is one detected wiring defect.
type DefectJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ResultJSON is the root JSON payload for one classified observation.
type ResultJSON struct {
	Classification  string           `json:"classification"`
	Headline        string           `json:"headline"`
	Rationale       string           `json:"rationale"`
	OrientationNote string           `json:"orientation_note,omitempty"`
	Defective       bool             `json:"defective"`
	LeftConnector   string           `json:"left_connector,omitempty"`
	RightConnector  string           `json:"right_connector,omitempty"`
	Capabilities    CapabilitiesJSON `json:"capabilities"`
	Lanes           []LaneJSON       `json:"lanes"`
	BrokenPairs     []DefectJSON     `json:"broken_pairs,omitempty"`
	Warnings        []DefectJSON     `json:"warnings,omitempty"`
	CheckedLeft     []string         `json:"checked_left,omitempty"`
	CheckedRight    []string         `json:"checked_right,omitempty"`
}

// BuildResultJSON forms the JSON payload without serializing it.
func BuildResultJSON(r *classify.Result) ResultJSON {
	caps := r.Capabilities
	out := ResultJSON{
		Classification:  r.Classification.String(),
		Headline:        r.Classification.Headline(),
		Rationale:       r.Rationale,
		OrientationNote: r.OrientationNote,
		Defective:       r.Classification.Defective(),
		LeftConnector:   r.Left.String(),
		RightConnector:  r.Right.String(),
		Capabilities: CapabilitiesJSON{
			USB2Data:      caps.USB2.String(),
			PowerDelivery: caps.Power.String(),
			SuperSpeed:    caps.SuperSpeed.String(),
			AltMode:       caps.AltMode.String(),
			ConfigChannel: caps.CC().String(),
			SSDetected:    caps.SSDetected,
			SSExpected:    caps.SSExpected,
			CCLines:       caps.CCLines,
			SBULines:      caps.SBULines,
			VBusCount:     caps.VBusCount,
			GNDCount:      caps.GNDCount,
		},
		Lanes: make([]LaneJSON, 0, len(r.Lanes)),
	}

	for i, lane := range r.Lanes {
		out.Lanes = append(out.Lanes, LaneJSON{
			Name:       laneNames[i],
			State:      lane.State.String(),
			ActivePins: lane.Active,
		})
	}
	for _, d := range r.BrokenPairs() {
		out.BrokenPairs = append(out.BrokenPairs, defectJSON(d))
	}
	for _, d := range r.Warnings() {
		out.Warnings = append(out.Warnings, defectJSON(d))
	}
	if len(r.LeftChecked) > 0 {
		out.CheckedLeft = sortChecked(r.LeftChecked)
	}
	if len(r.RightChecked) > 0 {
		out.CheckedRight = sortChecked(r.RightChecked)
	}
	return out
}

func defectJSON(d classify.Defect) DefectJSON {
	return DefectJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.String(),
		Message:  d.Message,
	}
}

// WriteJSON writes the payload with two-space indentation.
func WriteJSON(w io.Writer, r *classify.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildResultJSON(r))
}
