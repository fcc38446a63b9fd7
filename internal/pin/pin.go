package pin

// Pin identifies a logical USB signal.
type Pin uint8

const (
	// GND is the ground return for power and signals.
	GND Pin = iota
	// VBus is the power supply rail.
	VBus // VBUS
	// DPlus is the USB 2.0 data positive line.
	DPlus // D+
	// DMinus is the USB 2.0 data negative line.
	DMinus // D-
	// CC1 is configuration channel 1.
	CC1
	// CC2 is configuration channel 2.
	CC2
	// SBU1 is sideband use 1.
	SBU1
	// SBU2 is sideband use 2.
	SBU2
	// TX1Plus is SuperSpeed lane 1 transmit positive.
	TX1Plus // TX1+
	// TX1Minus is SuperSpeed lane 1 transmit negative.
	TX1Minus // TX1-
	// RX1Plus is SuperSpeed lane 1 receive positive.
	RX1Plus // RX1+
	// RX1Minus is SuperSpeed lane 1 receive negative.
	RX1Minus // RX1-
	// TX2Plus is SuperSpeed lane 2 transmit positive.
	TX2Plus // TX2+
	// TX2Minus is SuperSpeed lane 2 transmit negative.
	TX2Minus // TX2-
	// RX2Plus is SuperSpeed lane 2 receive positive.
	RX2Plus // RX2+
	// RX2Minus is SuperSpeed lane 2 receive negative.
	RX2Minus // RX2-

	pinCount = 16
)

var labels = [pinCount]string{
	GND:      "GND",
	VBus:     "VBUS",
	DPlus:    "D+",
	DMinus:   "D-",
	CC1:      "CC1",
	CC2:      "CC2",
	SBU1:     "SBU1",
	SBU2:     "SBU2",
	TX1Plus:  "TX1+",
	TX1Minus: "TX1-",
	RX1Plus:  "RX1+",
	RX1Minus: "RX1-",
	TX2Plus:  "TX2+",
	TX2Minus: "TX2-",
	RX2Plus:  "RX2+",
	RX2Minus: "RX2-",
}

var byLabel = map[string]Pin{
	"GND":  GND,
	"VBUS": VBus,
	"D+":   DPlus,
	"D-":   DMinus,
	"CC1":  CC1,
	"CC2":  CC2,
	"SBU1": SBU1,
	"SBU2": SBU2,
	"TX1+": TX1Plus,
	"TX1-": TX1Minus,
	"RX1+": RX1Plus,
	"RX1-": RX1Minus,
	"TX2+": TX2Plus,
	"TX2-": TX2Minus,
	"RX2+": RX2Plus,
	"RX2-": RX2Minus,
}

// String returns the canonical signal label ("D+", "TX1-", ...).
func (p Pin) String() string {
	if int(p) < len(labels) {
		return labels[p]
	}
	return "INVALID"
}

// Parse resolves a canonical signal label to its Pin.
// Labels are case-sensitive: the silkscreen vocabulary is closed and
// uppercase, and lowercase variants are rejected so that typos surface at
// the boundary instead of silently dropping a pin.
func Parse(label string) (Pin, bool) {
	p, ok := byLabel[label]
	return p, ok
}

// All returns every Pin in ascending order.
func All() []Pin {
	out := make([]Pin, 0, pinCount)
	for p := Pin(0); p < pinCount; p++ {
		out = append(out, p)
	}
	return out
}
