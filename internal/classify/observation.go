package classify

import "cablecheck/internal/pin"

// Observation is one complete snapshot of what the tester saw. It is the
// sole input to Classify and is treated as read-only.
type Observation struct {
	// Active holds every logical pin with continuity, after board labels
	// from both sides have been translated to one namespace.
	Active pin.Set

	// Counts optionally records how many physical positions mapped to each
	// logical pin (GND and VBUS appear on several positions per side).
	// When nil or empty, every active pin counts as one occurrence.
	Counts map[pin.Pin]int

	// Left and Right are the operator-declared connector types. Either may
	// be ConnectorUnknown, which disables connector-specific expectations.
	Left  pin.ConnectorType
	Right pin.ConnectorType

	// LeftChecked and RightChecked echo the physical labels the operator
	// ticked per side. Display only; decision logic never reads them.
	LeftChecked  []string
	RightChecked []string
}

// count returns how many physical positions carried the pin. Missing count
// data degrades to presence: one occurrence per active pin.
func (o *Observation) count(p pin.Pin) int {
	if len(o.Counts) > 0 {
		return o.Counts[p]
	}
	if o.Active.Has(p) {
		return 1
	}
	return 0
}
