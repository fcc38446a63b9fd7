package classify

// DefectCode identifies one kind of wiring defect. Codes are ordered the
// way defects are detected and reported; do not reorder.
type DefectCode uint8

const (
	DefectLane1TX DefectCode = iota // Lane 1 transmit pair half-wired
	DefectLane1RX                   // Lane 1 receive pair half-wired
	DefectLane2TX                   // Lane 2 transmit pair half-wired
	DefectLane2RX                   // Lane 2 receive pair half-wired
	DefectUSB2Pair                  // D+/D- pair half-wired
	DefectPower                     // VBUS/GND present but below required counts
	DefectCCMissing                 // USB-C declared, no CC line at all
	DefectCCIncomplete              // full USB-C link, only one CC line
)

var defectIDs = [...]string{
	DefectLane1TX:      "LANE1_TX",
	DefectLane1RX:      "LANE1_RX",
	DefectLane2TX:      "LANE2_TX",
	DefectLane2RX:      "LANE2_RX",
	DefectUSB2Pair:     "USB2_PAIR",
	DefectPower:        "POWER",
	DefectCCMissing:    "CC_MISSING",
	DefectCCIncomplete: "CC_INCOMPLETE",
}

var defectMessages = [...]string{
	DefectLane1TX:      "Lane 1 TX pair broken",
	DefectLane1RX:      "Lane 1 RX pair broken",
	DefectLane2TX:      "Lane 2 TX pair broken",
	DefectLane2RX:      "Lane 2 RX pair broken",
	DefectUSB2Pair:     "USB 2.0 D+/D- pair broken",
	DefectPower:        "Power wiring incomplete (VBUS/GND)",
	DefectCCMissing:    "CC wiring missing (USB-C selected)",
	DefectCCIncomplete: "CC wiring incomplete (USB-C)",
}

// String returns the stable machine-readable identifier used in JSON.
func (c DefectCode) String() string {
	if int(c) < len(defectIDs) {
		return defectIDs[c]
	}
	return "UNKNOWN"
}

// Message returns the fixed report text for the code.
func (c DefectCode) Message() string {
	if int(c) < len(defectMessages) {
		return defectMessages[c]
	}
	return "unknown defect"
}

// severity maps a code to its fixed severity. Only the single-CC case is a
// warning; everything else invalidates the cable.
func (c DefectCode) severity() Severity {
	if c == DefectCCIncomplete {
		return SevWarning
	}
	return SevFault
}

// Defect is one detected wiring problem, ready for reporting.
type Defect struct {
	Code     DefectCode
	Severity Severity
	Message  string
}

func newDefect(code DefectCode) Defect {
	return Defect{Code: code, Severity: code.severity(), Message: code.Message()}
}
