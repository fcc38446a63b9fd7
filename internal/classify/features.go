package classify

import "cablecheck/internal/pin"

// features is the intermediate digest the decision tree consumes. Every
// field is derived from the Observation alone.
type features struct {
	usb2Full    bool // both D+ and D- active
	usb2Partial bool // exactly one of D+/D- active

	vbusCount int
	gndCount  int

	lane1 pin.Set // active pins within SuperSpeed lane 1
	lane2 pin.Set // active pins within SuperSpeed lane 2

	lane1Complete bool
	lane2Complete bool

	ssCount   int  // active SuperSpeed pins, 0..8
	fullSS    bool // all eight
	partialSS bool // some but not all

	ccCount  int
	sbuCount int

	usbCAny  bool // at least one end declared USB-C
	usbCBoth bool
	usb3Any  bool // at least one end declared a USB 3.x connector
	fullUSBC bool // USB-C 3.x on both ends

	legacyUSB2 bool // USB 2.0 wiring on declared legacy (non-C) connectors
	legacyUSB3 bool // USB 3.x wiring on declared legacy (non-C) connectors

	expectedSS int  // SuperSpeed pins the declared connectors call for
	mismatchSS bool // wiring exceeds what the connectors can carry

	powerFull    bool
	powerPartial bool

	oneLaneOnly bool // exactly one lane complete
	singleLane  bool // exactly one lane complete and no stray SS pins
}

func detectFeatures(o *Observation) features {
	var f features

	usb2 := o.Active.Intersect(pin.USB2Pair).Count()
	f.usb2Full = usb2 == 2
	f.usb2Partial = usb2 == 1

	f.vbusCount = o.count(pin.VBus)
	f.gndCount = o.count(pin.GND)

	f.lane1 = o.Active.Intersect(pin.Lane1)
	f.lane2 = o.Active.Intersect(pin.Lane2)
	f.lane1Complete = f.lane1.Count() == 4
	f.lane2Complete = f.lane2.Count() == 4

	f.ssCount = o.Active.Intersect(pin.SuperSpeed).Count()
	f.fullSS = f.ssCount == 8
	f.partialSS = f.ssCount > 0 && f.ssCount < 8

	f.ccCount = o.Active.Intersect(pin.CCPins).Count()
	f.sbuCount = o.Active.Intersect(pin.SBUPins).Count()

	leftC, rightC := o.Left.IsTypeC(), o.Right.IsTypeC()
	left3, right3 := o.Left.IsUSB3(), o.Right.IsUSB3()
	f.usbCAny = leftC || rightC
	f.usbCBoth = leftC && rightC
	f.usb3Any = left3 || right3
	f.fullUSBC = f.usbCBoth && left3 && right3

	f.legacyUSB2 = f.usb2Full && !f.usb3Any && !f.usbCAny
	f.legacyUSB3 = f.usb2Full && f.usb3Any && !f.usbCAny

	switch {
	case f.fullUSBC:
		f.expectedSS = 8
	case f.usb3Any:
		f.expectedSS = 4
	}
	f.mismatchSS = f.ssCount > f.expectedSS
	if f.usb3Any && !f.usbCAny && !f.lane2.Empty() {
		// Legacy 3.x plugs route a single fixed lane; anything on lane 2
		// cannot reach the connector pins.
		f.mismatchSS = true
	}

	if f.fullUSBC {
		f.powerFull = f.vbusCount >= 2 && f.gndCount >= 4
	} else {
		f.powerFull = f.vbusCount >= 1 && f.gndCount >= 1
	}
	f.powerPartial = !f.powerFull && (f.vbusCount > 0 || f.gndCount > 0)

	f.oneLaneOnly = f.lane1Complete != f.lane2Complete
	f.singleLane = f.oneLaneOnly && f.ssCount == 4

	return f
}

// detectDefects walks the fixed defect order: the four lane pairs, the
// USB 2.0 pair, power, then configuration channel wiring.
func detectDefects(f features) []Defect {
	var out []Defect

	halfPair := func(code DefectCode, pair pin.Set, active pin.Set) {
		if active.Intersect(pair).Count() == 1 {
			out = append(out, newDefect(code))
		}
	}
	halfPair(DefectLane1TX, pin.Lane1TX, f.lane1)
	halfPair(DefectLane1RX, pin.Lane1RX, f.lane1)
	halfPair(DefectLane2TX, pin.Lane2TX, f.lane2)
	halfPair(DefectLane2RX, pin.Lane2RX, f.lane2)

	if f.usb2Partial {
		out = append(out, newDefect(DefectUSB2Pair))
	}
	if f.powerPartial {
		out = append(out, newDefect(DefectPower))
	}

	switch {
	case f.usbCAny && f.ccCount == 0:
		out = append(out, newDefect(DefectCCMissing))
	case f.fullUSBC && f.ccCount == 1:
		out = append(out, newDefect(DefectCCIncomplete))
	}
	return out
}
