package classify

// Classification is the single best-fit profile for an observed cable.
type Classification uint8

const (
	Unknown Classification = iota
	DamagedCable
	ConnectorMismatch
	PremiumUSBC
	USB3FastData
	USB3SingleLane
	USB2Data
	ChargingCable
	ChargingIncomplete
	NonStandard
)

var classificationIDs = [...]string{
	Unknown:            "UNKNOWN",
	DamagedCable:       "DAMAGED_CABLE",
	ConnectorMismatch:  "CONNECTOR_MISMATCH",
	PremiumUSBC:        "PREMIUM_USB_C",
	USB3FastData:       "USB3_FAST_DATA",
	USB3SingleLane:     "USB3_SINGLE_LANE",
	USB2Data:           "USB2_DATA",
	ChargingCable:      "CHARGING_CABLE",
	ChargingIncomplete: "CHARGING_INCOMPLETE",
	NonStandard:        "NON_STANDARD",
}

var headlines = [...]string{
	Unknown:            "Unknown Cable",
	DamagedCable:       "DAMAGED CABLE - Broken wiring detected",
	ConnectorMismatch:  "Mismatch: Connector selection vs detected wiring",
	PremiumUSBC:        "Premium USB-C Cable (Full Featured)",
	USB3FastData:       "USB 3.x Fast Data Cable",
	USB3SingleLane:     "USB 3.x Data Cable (Single-Lane)",
	USB2Data:           "USB 2.0 Data Cable",
	ChargingCable:      "Charging Cable",
	ChargingIncomplete: "Charging Cable (Incomplete Power Wiring)",
	NonStandard:        "NON-STANDARD Cable",
}

var rationales = [...]string{
	Unknown:            "Unable to determine cable type. May be defective.",
	DamagedCable:       "This cable has broken or missing connections. Do not use for data transfer.",
	ConnectorMismatch:  "Selected connectors do not match detected SuperSpeed wiring.",
	PremiumUSBC:        "Supports high-speed data, Alt-Mode (video/display output), and advanced features.",
	USB3FastData:       "Supports high-speed data transfer. Good for modern devices.",
	USB3SingleLane:     "Single SuperSpeed lane detected (common in USB-A/B to USB-C cables).",
	USB2Data:           "Good for basic data transfer, charging, and older devices.",
	ChargingCable:      "Supports power delivery only. Not suitable for data transfer.",
	ChargingIncomplete: "Power wiring is incomplete. Charging may be unstable or unsafe.",
	NonStandard:        "Has incomplete or damaged SuperSpeed connections. May work but not recommended.",
}

// Rationale variants picked over the defaults when the declared connectors
// are all legacy (non-USB-C) types.
const (
	rationaleSingleLaneLegacy = "Single SuperSpeed lane detected (legacy USB 3.0 connectors)."
	rationaleUSB2Legacy       = "Legacy USB 2.0 wiring detected (USB-A/B/Micro/Mini/Lightning)."
)

// OrientationNote is attached when only one SuperSpeed lane is wired end to
// end, so the cable works in just one plug orientation.
const OrientationNote = "Works in one orientation only"

// String returns the stable machine-readable identifier.
func (c Classification) String() string {
	if int(c) < len(classificationIDs) {
		return classificationIDs[c]
	}
	return "UNKNOWN"
}

// Headline returns the report headline for the classification.
func (c Classification) Headline() string {
	if int(c) < len(headlines) {
		return headlines[c]
	}
	return headlines[Unknown]
}

// Defective reports whether a cable with this classification must not be
// used as wired.
func (c Classification) Defective() bool {
	return c == DamagedCable || c == ConnectorMismatch
}

// Classify evaluates one observation. It never fails; wiring that fits no
// known profile yields Unknown.
func Classify(o Observation) Result {
	f := detectFeatures(&o)
	defects := detectDefects(f)
	c, rationale, note := decide(f, defects)

	return Result{
		Classification:  c,
		Rationale:       rationale,
		OrientationNote: note,
		Capabilities:    capabilities(f),
		Lanes:           [2]LaneStatus{laneStatus(f.lane1), laneStatus(f.lane2)},
		Defects:         defects,
		Left:            o.Left,
		Right:           o.Right,
		LeftChecked:     o.LeftChecked,
		RightChecked:    o.RightChecked,
	}
}

func hasFault(defects []Defect) bool {
	for _, d := range defects {
		if d.Severity == SevFault {
			return true
		}
	}
	return false
}

func orientationNote(f features) string {
	if f.oneLaneOnly {
		return OrientationNote
	}
	return ""
}

// decide walks the profile ladder top to bottom; the first match wins.
// Order encodes precedence: damage beats mismatch beats feature-complete
// beats degraded beats absent.
func decide(f features, defects []Defect) (Classification, string, string) {
	switch {
	case hasFault(defects):
		return DamagedCable, rationales[DamagedCable], ""

	case f.mismatchSS:
		return ConnectorMismatch, rationales[ConnectorMismatch], ""

	case f.fullSS && f.sbuCount == 2 && f.usb2Full && f.ccCount > 0:
		return PremiumUSBC, rationales[PremiumUSBC], orientationNote(f)

	case f.fullSS && f.usb2Full && f.ccCount > 0:
		return USB3FastData, rationales[USB3FastData], orientationNote(f)

	case f.usb2Full && f.singleLane:
		if f.legacyUSB3 {
			// Legacy 3.x plugs carry exactly one fixed lane, so a single
			// complete lane is the expected shape, not an orientation quirk.
			return USB3SingleLane, rationaleSingleLaneLegacy, ""
		}
		return USB3SingleLane, rationales[USB3SingleLane], orientationNote(f)

	case f.usb2Full && !f.fullSS && !f.partialSS:
		if f.legacyUSB2 {
			return USB2Data, rationaleUSB2Legacy, ""
		}
		return USB2Data, rationales[USB2Data], ""

	case f.powerFull && !f.usb2Full && f.ssCount == 0:
		return ChargingCable, rationales[ChargingCable], ""

	case f.powerPartial && !f.usb2Full && f.ssCount == 0:
		return ChargingIncomplete, rationales[ChargingIncomplete], ""

	case f.usb2Full && f.partialSS:
		return NonStandard, rationales[NonStandard], orientationNote(f)

	default:
		return Unknown, rationales[Unknown], ""
	}
}
