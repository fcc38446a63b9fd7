package classify

import "cablecheck/internal/pin"

// TriState is a three-valued capability answer.
type TriState uint8

const (
	No TriState = iota
	Partial
	Yes
)

func (t TriState) String() string {
	switch t {
	case Yes:
		return "Yes"
	case Partial:
		return "Partial"
	default:
		return "No"
	}
}

func triState(full, partial bool) TriState {
	switch {
	case full:
		return Yes
	case partial:
		return Partial
	default:
		return No
	}
}

// Capabilities summarizes what the observed wiring can carry, with the raw
// counts behind each answer.
type Capabilities struct {
	USB2       TriState
	Power      TriState
	SuperSpeed TriState
	AltMode    TriState

	SSDetected int // active SuperSpeed pins, 0..8
	SSExpected int // pins the declared connectors call for: 0, 4, or 8
	CCLines    int // 0..2
	SBULines   int // 0..2
	VBusCount  int
	GNDCount   int
}

// CC returns the configuration-channel answer derived from CCLines.
func (c Capabilities) CC() TriState {
	return triState(c.CCLines == 2, c.CCLines == 1)
}

// LaneState grades one SuperSpeed lane.
type LaneState uint8

const (
	LaneMissing    LaneState = iota // no pins of the lane active
	LaneIncomplete                  // some but not all four
	LaneOK                          // all four
)

func (s LaneState) String() string {
	switch s {
	case LaneOK:
		return "OK"
	case LaneIncomplete:
		return "INCOMPLETE"
	default:
		return "MISSING"
	}
}

// LaneStatus describes one SuperSpeed lane of the cable.
type LaneStatus struct {
	State  LaneState
	Active int // active pins in the lane, 0..4
}

func laneStatus(lane pin.Set) LaneStatus {
	n := lane.Count()
	switch {
	case n == 4:
		return LaneStatus{State: LaneOK, Active: n}
	case n > 0:
		return LaneStatus{State: LaneIncomplete, Active: n}
	default:
		return LaneStatus{State: LaneMissing}
	}
}

func capabilities(f features) Capabilities {
	return Capabilities{
		USB2:       triState(f.usb2Full, f.usb2Partial),
		Power:      triState(f.powerFull, f.powerPartial),
		SuperSpeed: triState(f.fullSS, f.partialSS),
		AltMode:    triState(f.sbuCount == 2, f.sbuCount == 1),
		SSDetected: f.ssCount,
		SSExpected: f.expectedSS,
		CCLines:    f.ccCount,
		SBULines:   f.sbuCount,
		VBusCount:  f.vbusCount,
		GNDCount:   f.gndCount,
	}
}

// Result is the complete verdict for one observation.
type Result struct {
	Classification  Classification
	Rationale       string
	OrientationNote string // empty when no orientation caveat applies

	Capabilities Capabilities
	Lanes        [2]LaneStatus // index 0 is Lane 1

	// Defects in detection order: lane pairs, USB 2.0 pair, power, CC.
	Defects []Defect

	// Connector declarations and checked-label echoes, carried through for
	// rendering only.
	Left         pin.ConnectorType
	Right        pin.ConnectorType
	LeftChecked  []string
	RightChecked []string
}

// BrokenPairs returns the fault-severity defects in detection order.
func (r *Result) BrokenPairs() []Defect {
	return r.filter(SevFault)
}

// Warnings returns the warning-severity defects in detection order.
func (r *Result) Warnings() []Defect {
	return r.filter(SevWarning)
}

func (r *Result) filter(sev Severity) []Defect {
	var out []Defect
	for _, d := range r.Defects {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}
