package classify

// Severity ranks a detected wiring defect.
type Severity uint8

const (
	// SevWarning marks wiring that is unusual or incomplete but does not on
	// its own make the cable unusable.
	SevWarning Severity = iota
	// SevFault marks a broken differential pair or missing mandatory wiring.
	// Any fault forces the DamagedCable classification.
	SevFault
)

// String returns the canonical upper-case name used in reports and JSON.
func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevFault:
		return "FAULT"
	default:
		return "UNKNOWN"
	}
}
