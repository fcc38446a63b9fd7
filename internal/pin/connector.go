package pin

// ConnectorType is a declared plug type on one end of the cable under test.
// The zero value means no declaration was made; feature gating treats it as
// neither USB-C nor USB 3.x.
type ConnectorType uint8

const (
	// ConnectorUnknown means the operator made no selection for the side.
	ConnectorUnknown ConnectorType = iota
	// TypeA20 is a legacy USB 2.0 Type-A plug.
	TypeA20 // Type A 2.0
	// TypeA30 is a USB 3.0 Type-A plug.
	TypeA30 // Type A 3.0
	// TypeB30 is a USB 3.0 Type-B plug.
	TypeB30 // Type B 3.0
	// TypeC30 is a USB-C plug with USB 3.x wiring.
	TypeC30 // Type C 3.0
	// MicroB30 is a USB 3.0 Micro-B plug.
	MicroB30 // Micro B 3.0
	// MiniB20 is a USB 2.0 Mini-B plug.
	MiniB20 // Mini B 2.0
	// Lightning is an Apple Lightning plug (USB 2.0 signaling).
	Lightning
	// MicroB20 is a USB 2.0 Micro-B plug.
	MicroB20 // Micro B 2.0
)

var connectorLabels = [...]string{
	ConnectorUnknown: "",
	TypeA20:          "Type A 2.0",
	TypeA30:          "Type A 3.0",
	TypeB30:          "Type B 3.0",
	TypeC30:          "Type C 3.0",
	MicroB30:         "Micro B 3.0",
	MiniB20:          "Mini B 2.0",
	Lightning:        "Lightning",
	MicroB20:         "Micro B 2.0",
}

var byConnectorLabel = map[string]ConnectorType{
	"Type A 2.0":  TypeA20,
	"Type A 3.0":  TypeA30,
	"Type B 3.0":  TypeB30,
	"Type C 3.0":  TypeC30,
	"Micro B 3.0": MicroB30,
	"Mini B 2.0":  MiniB20,
	"Lightning":   Lightning,
	"Micro B 2.0": MicroB20,
}

// String returns the display label, empty for ConnectorUnknown.
func (c ConnectorType) String() string {
	if int(c) < len(connectorLabels) {
		return connectorLabels[c]
	}
	return ""
}

// IsTypeC reports whether the plug is USB-C.
func (c ConnectorType) IsTypeC() bool {
	return c == TypeC30
}

// IsUSB3 reports whether the plug carries USB 3.x wiring.
func (c ConnectorType) IsUSB3() bool {
	switch c {
	case TypeA30, TypeB30, TypeC30, MicroB30:
		return true
	}
	return false
}

// Known reports whether a selection was made.
func (c ConnectorType) Known() bool {
	return c != ConnectorUnknown
}

// ParseConnector resolves a display label to a ConnectorType. The empty
// string is a valid "no selection".
func ParseConnector(label string) (ConnectorType, bool) {
	if label == "" {
		return ConnectorUnknown, true
	}
	c, ok := byConnectorLabel[label]
	return c, ok
}

// ConnectorChoices lists the plug types the board offers for a side, in
// the order they appear on the selector.
func ConnectorChoices(s Side) []ConnectorType {
	if s == Right {
		return []ConnectorType{TypeB30, TypeC30, MicroB30, MiniB20, Lightning, MicroB20}
	}
	return []ConnectorType{TypeA30, TypeA20, TypeC30}
}
