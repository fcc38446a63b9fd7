package pin

// Signal groups the classifier reasons about. Lane1 and Lane2 partition
// SuperSpeed; the TX/RX halves partition each lane.
var (
	USB2Pair = SetOf(DPlus, DMinus)
	CCPins   = SetOf(CC1, CC2)
	SBUPins  = SetOf(SBU1, SBU2)

	Lane1TX = SetOf(TX1Plus, TX1Minus)
	Lane1RX = SetOf(RX1Plus, RX1Minus)
	Lane2TX = SetOf(TX2Plus, TX2Minus)
	Lane2RX = SetOf(RX2Plus, RX2Minus)

	Lane1 = Lane1TX.Union(Lane1RX)
	Lane2 = Lane2TX.Union(Lane2RX)

	SuperSpeed = Lane1.Union(Lane2)
)

var descriptions = [pinCount]string{
	GND:      "Ground pin for power and signal return",
	VBus:     "Power supply pin (5V, 9V, 15V, 20V)",
	DPlus:    "USB 2.0 data positive",
	DMinus:   "USB 2.0 data negative",
	CC1:      "Configuration Channel 1 for cable detection and power negotiation",
	CC2:      "Configuration Channel 2 for cable detection and power negotiation",
	SBU1:     "Sideband Use 1 for alternate modes (e.g., DisplayPort)",
	SBU2:     "Sideband Use 2 for alternate modes (e.g., DisplayPort)",
	TX1Plus:  "Transmit positive for USB 3.x SuperSpeed lane 1",
	TX1Minus: "Transmit negative for USB 3.x SuperSpeed lane 1",
	RX1Plus:  "Receive positive for USB 3.x SuperSpeed lane 1",
	RX1Minus: "Receive negative for USB 3.x SuperSpeed lane 1",
	TX2Plus:  "Transmit positive for USB 3.x SuperSpeed lane 2",
	TX2Minus: "Transmit negative for USB 3.x SuperSpeed lane 2",
	RX2Plus:  "Receive positive for USB 3.x SuperSpeed lane 2",
	RX2Minus: "Receive negative for USB 3.x SuperSpeed lane 2",
}

// Description returns the reference text for a pin, shown by the pins
// command and the checker status line.
func (p Pin) Description() string {
	if int(p) < len(descriptions) {
		return descriptions[p]
	}
	return ""
}
