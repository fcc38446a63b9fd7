// Package board translates physical tester-board labels into logical pin
// identities. The stock checker board's right row is silkscreened for the
// far connector's viewpoint, so several labels name a different signal than
// the one actually wired there; a Profile captures that per-side remapping.
// Validation happens here, at the boundary: the classifier downstream only
// ever sees logical pins.
package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"cablecheck/internal/pin"
)

var (
	// ErrInvalidPinLabel indicates a label that does not name a pin, or
	// names one the side's layout does not carry.
	ErrInvalidPinLabel = errors.New("invalid pin label")
	// ErrInvalidConnectorType indicates an unrecognized connector name.
	ErrInvalidConnectorType = errors.New("invalid connector type")
	// ErrDuplicatePinAssignment indicates a profile wiring the same physical
	// label on one side to two different signals.
	ErrDuplicatePinAssignment = errors.New("duplicate pin assignment")
)

type remapKey struct {
	side  pin.Side
	label string
}

// Profile is one board revision: a name plus the per-side corrections from
// silkscreen label to the signal actually wired at that position. Labels
// without an entry translate as themselves.
type Profile struct {
	Name  string
	remap map[remapKey]pin.Pin
}

// Default returns the profile of the stock checker board. The left row is
// wired as printed; six right-row positions carry a different signal than
// their silkscreen claims.
func Default() *Profile {
	return &Profile{
		Name: "default",
		remap: map[remapKey]pin.Pin{
			{pin.Right, "RX2+"}: pin.TX1Plus,
			{pin.Right, "RX2-"}: pin.TX1Minus,
			{pin.Right, "D-"}:   pin.DPlus,
			{pin.Right, "D+"}:   pin.DMinus,
			{pin.Right, "TX1-"}: pin.RX2Minus,
			{pin.Right, "TX1+"}: pin.RX2Plus,
		},
	}
}

// Translate resolves a board label on the given side to its logical pin:
// profile remap first, the label's own name otherwise.
func (p *Profile) Translate(side pin.Side, label string) (pin.Pin, error) {
	if mapped, ok := p.remap[remapKey{side: side, label: label}]; ok {
		return mapped, nil
	}
	parsed, ok := pin.Parse(label)
	if !ok {
		return 0, fmt.Errorf("%s side: unknown pin label %q: %w", side, label, ErrInvalidPinLabel)
	}
	return parsed, nil
}

// CheckedPin is one resolved physical position: the logical pin it reaches
// and the position/label pair for the report echo.
type CheckedPin struct {
	Pin      pin.Pin
	Position uint8
	Label    string
}

// Echo returns the display form used in the checked-pins report block.
func (c CheckedPin) Echo() string {
	return fmt.Sprintf("%02d %s", c.Position, c.Label)
}

// TranslateChecked resolves one raw checked-pin entry. Two forms are
// accepted: a bare silkscreen label ("D+"), which resolves to the first
// matching position of the side, and a position-qualified one ("07 D+"),
// which must match the layout exactly. Labels appearing at several
// positions (GND, VBUS) need the qualified form to be told apart.
func (p *Profile) TranslateChecked(side pin.Side, raw string) (CheckedPin, error) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		label := fields[0]
		for _, pos := range pin.Layout(side) {
			if pos.Label == label {
				return p.resolve(side, pos.Index, label)
			}
		}
		return CheckedPin{}, fmt.Errorf("%s side: no position labeled %q: %w", side, label, ErrInvalidPinLabel)
	case 2:
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return CheckedPin{}, fmt.Errorf("%s side: bad position in entry %q: %w", side, raw, ErrInvalidPinLabel)
		}
		index, err := safecast.Conv[uint8](n)
		if err != nil {
			return CheckedPin{}, fmt.Errorf("%s side: position %d out of range: %w", side, n, ErrInvalidPinLabel)
		}
		label, ok := pin.LabelAt(side, index)
		if !ok {
			return CheckedPin{}, fmt.Errorf("%s side: position %d out of range: %w", side, n, ErrInvalidPinLabel)
		}
		if label != fields[1] {
			return CheckedPin{}, fmt.Errorf("%s side: position %d is labeled %q, not %q: %w", side, n, label, fields[1], ErrInvalidPinLabel)
		}
		return p.resolve(side, index, label)
	default:
		return CheckedPin{}, fmt.Errorf("%s side: malformed pin entry %q: %w", side, raw, ErrInvalidPinLabel)
	}
}

func (p *Profile) resolve(side pin.Side, index uint8, label string) (CheckedPin, error) {
	logical, err := p.Translate(side, label)
	if err != nil {
		return CheckedPin{}, err
	}
	return CheckedPin{Pin: logical, Position: index, Label: label}, nil
}

// ParseConnector resolves a connector display name for CLI and file input.
// An empty string means "not declared" and is not an error.
func ParseConnector(text string) (pin.ConnectorType, error) {
	c, ok := pin.ParseConnector(strings.TrimSpace(text))
	if !ok {
		return pin.ConnectorUnknown, fmt.Errorf("unknown connector type %q: %w", text, ErrInvalidConnectorType)
	}
	return c, nil
}

func sideHasLabel(side pin.Side, label string) bool {
	for _, pos := range pin.Layout(side) {
		if pos.Label == label {
			return true
		}
	}
	return false
}
