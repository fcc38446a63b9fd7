package board

import (
	"errors"
	"testing"

	"cablecheck/internal/pin"
)

func TestDefaultProfile_RightSideRemap(t *testing.T) {
	p := Default()

	cases := map[string]pin.Pin{
		// The six silkscreen corrections.
		"RX2+": pin.TX1Plus,
		"RX2-": pin.TX1Minus,
		"D-":   pin.DPlus,
		"D+":   pin.DMinus,
		"TX1-": pin.RX2Minus,
		"TX1+": pin.RX2Plus,
		// Labels wired as printed.
		"GND":  pin.GND,
		"VBUS": pin.VBus,
		"SBU1": pin.SBU1,
		"CC1":  pin.CC1,
	}

	for label, want := range cases {
		got, err := p.Translate(pin.Right, label)
		if err != nil {
			t.Fatalf("Translate(right, %q) error: %v", label, err)
		}
		if got != want {
			t.Fatalf("Translate(right, %q) = %v, want %v", label, got, want)
		}
	}
}

func TestDefaultProfile_LeftSideIdentity(t *testing.T) {
	p := Default()

	for _, pos := range pin.Layout(pin.Left) {
		want, ok := pin.Parse(pos.Label)
		if !ok {
			t.Fatalf("layout label %q does not parse", pos.Label)
		}
		got, err := p.Translate(pin.Left, pos.Label)
		if err != nil {
			t.Fatalf("Translate(left, %q) error: %v", pos.Label, err)
		}
		if got != want {
			t.Fatalf("Translate(left, %q) = %v, want %v", pos.Label, got, want)
		}
	}
}

func TestTranslate_UnknownLabel(t *testing.T) {
	p := Default()

	_, err := p.Translate(pin.Left, "AUX1")
	if !errors.Is(err, ErrInvalidPinLabel) {
		t.Fatalf("Translate(left, AUX1) error = %v, want %v", err, ErrInvalidPinLabel)
	}
}

func TestTranslateChecked(t *testing.T) {
	p := Default()

	cases := []struct {
		name     string
		side     pin.Side
		raw      string
		want     pin.Pin
		position uint8
		echo     string
	}{
		{"bare left", pin.Left, "D+", pin.DPlus, 6, "06 D+"},
		{"bare right remapped", pin.Right, "D+", pin.DMinus, 7, "07 D+"},
		{"bare duplicate label takes first position", pin.Left, "GND", pin.GND, 1, "01 GND"},
		{"qualified second duplicate", pin.Left, "12 GND", pin.GND, 12, "12 GND"},
		{"qualified right lane", pin.Right, "11 TX1+", pin.RX2Plus, 11, "11 TX1+"},
		{"qualified vbus", pin.Right, "09 VBUS", pin.VBus, 9, "09 VBUS"},
		{"extra whitespace tolerated", pin.Left, "  05   CC2 ", pin.CC2, 5, "05 CC2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.TranslateChecked(tc.side, tc.raw)
			if err != nil {
				t.Fatalf("TranslateChecked(%v, %q) error: %v", tc.side, tc.raw, err)
			}
			if got.Pin != tc.want || got.Position != tc.position {
				t.Fatalf("TranslateChecked(%v, %q) = %v@%d, want %v@%d", tc.side, tc.raw, got.Pin, got.Position, tc.want, tc.position)
			}
			if got.Echo() != tc.echo {
				t.Fatalf("Echo() = %q, want %q", got.Echo(), tc.echo)
			}
		})
	}
}

func TestTranslateChecked_Rejected(t *testing.T) {
	p := Default()

	cases := []struct {
		side pin.Side
		raw  string
	}{
		{pin.Left, "TX1+"},        // not on the left row
		{pin.Left, "AUX1"},        // not a pin at all
		{pin.Left, "13 GND"},      // position out of range
		{pin.Left, "0 GND"},       // positions are 1-based
		{pin.Left, "-1 GND"},      // negative position
		{pin.Left, "06 D-"},       // position 6 is labeled D+
		{pin.Right, "02 D+"},      // position 2 is labeled RX2+
		{pin.Left, "06 D+ extra"}, // too many fields
		{pin.Left, ""},            // empty entry
	}

	for _, tc := range cases {
		if _, err := p.TranslateChecked(tc.side, tc.raw); !errors.Is(err, ErrInvalidPinLabel) {
			t.Fatalf("TranslateChecked(%v, %q) error = %v, want %v", tc.side, tc.raw, err, ErrInvalidPinLabel)
		}
	}
}

func TestParseConnector(t *testing.T) {
	got, err := ParseConnector("Type C 3.0")
	if err != nil || got != pin.TypeC30 {
		t.Fatalf("ParseConnector(Type C 3.0) = %v, %v; want %v, nil", got, err, pin.TypeC30)
	}

	got, err = ParseConnector("")
	if err != nil || got != pin.ConnectorUnknown {
		t.Fatalf("ParseConnector(\"\") = %v, %v; want %v, nil", got, err, pin.ConnectorUnknown)
	}

	// Declared-but-unknown names fail loudly instead of degrading to
	// an undeclared connector.
	if _, err := ParseConnector("usb-c"); !errors.Is(err, ErrInvalidConnectorType) {
		t.Fatalf("ParseConnector(usb-c) error = %v, want %v", err, ErrInvalidConnectorType)
	}
}
