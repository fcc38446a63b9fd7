// Package report renders classification results. The plain text form is the
// canonical one: its bytes are stable for a given Result and are what golden
// tests pin down. Color and JSON are presentation variants on top of it.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"cablecheck/internal/classify"
	"cablecheck/internal/pin"
)

var laneNames = [2]string{"Lane 1 (TX1/RX1)", "Lane 2 (TX2/RX2)"}

// Text renders the canonical multi-line report, without a trailing newline.
// Deterministic: equal Results produce byte-identical output.
func Text(r *classify.Result) string {
	var b strings.Builder

	b.WriteString(r.Classification.Headline())
	b.WriteByte('\n')
	b.WriteString(r.Rationale)

	if r.Left.Known() || r.Right.Known() {
		fmt.Fprintf(&b, "\nSelected connectors: %s ↔ %s", connectorOrUnknown(r.Left), connectorOrUnknown(r.Right))
	}
	if r.OrientationNote != "" {
		fmt.Fprintf(&b, "\nNote: %s", r.OrientationNote)
	}

	caps := r.Capabilities
	b.WriteString("\n\nCapabilities:")
	fmt.Fprintf(&b, "\n  • USB 2.0 data: %s", caps.USB2)
	fmt.Fprintf(&b, "\n  • Power delivery: %s", caps.Power)
	fmt.Fprintf(&b, "\n  • SuperSpeed (USB 3.x): %s (expected %d/8 pins)", caps.SuperSpeed, caps.SSExpected)
	fmt.Fprintf(&b, "\n  • Alt-Mode wiring (SBU): %s (not a guarantee of Alt-Mode)", caps.AltMode)

	fmt.Fprintf(&b, "\n\nSuperSpeed Lanes (%d/8 pins detected):", caps.SSDetected)
	for i, lane := range r.Lanes {
		switch lane.State {
		case classify.LaneIncomplete:
			fmt.Fprintf(&b, "\n  • %s: INCOMPLETE (%d/4 pins)", laneNames[i], lane.Active)
		default:
			fmt.Fprintf(&b, "\n  • %s: %s", laneNames[i], lane.State)
		}
	}

	if broken := r.BrokenPairs(); len(broken) > 0 {
		b.WriteString("\n\nBroken Differential Pairs:")
		for _, d := range broken {
			fmt.Fprintf(&b, "\n  • %s", d.Message)
		}
	}
	if warnings := r.Warnings(); len(warnings) > 0 {
		b.WriteString("\n\nWiring Warnings:")
		for _, d := range warnings {
			fmt.Fprintf(&b, "\n  • %s", d.Message)
		}
	}

	b.WriteString("\n\nConfiguration:")
	fmt.Fprintf(&b, "\n  • CC (Config Channel): %s", caps.CC())
	fmt.Fprintf(&b, "\n  • SBU (Sideband): %d/2 lines", caps.SBULines)

	if len(r.LeftChecked) > 0 || len(r.RightChecked) > 0 {
		b.WriteString("\n\nChecked Pins:")
		if len(r.LeftChecked) > 0 {
			fmt.Fprintf(&b, "\n  %s: %s", pin.Left.RowName(), strings.Join(sortChecked(r.LeftChecked), ", "))
		}
		if len(r.RightChecked) > 0 {
			fmt.Fprintf(&b, "\n  %s: %s", pin.Right.RowName(), strings.Join(sortChecked(r.RightChecked), ", "))
		}
	}

	return b.String()
}

// TextOpts configures WriteText.
type TextOpts struct {
	// Color turns on ANSI accents. The text content is unchanged; only
	// styling is added.
	Color bool
}

var (
	faultHeadline    = color.New(color.FgRed, color.Bold)
	advisoryHeadline = color.New(color.FgYellow, color.Bold)
	healthyHeadline  = color.New(color.FgGreen, color.Bold)

	sectionStyle = color.New(color.Bold)
	noteStyle    = color.New(color.FgYellow)
	brokenStyle  = color.New(color.FgRed)
	warningStyle = color.New(color.FgYellow)
)

// WriteText writes the canonical report plus a trailing newline, optionally
// with color accents line by line.
func WriteText(w io.Writer, r *classify.Result, opts TextOpts) error {
	text := Text(r)
	if !opts.Color {
		_, err := io.WriteString(w, text+"\n")
		return err
	}

	var b strings.Builder
	section := ""
	for i, line := range strings.Split(text, "\n") {
		styled := line
		switch {
		case i == 0:
			styled = headlineStyle(r.Classification).Sprint(line)
		case strings.HasPrefix(line, "Note: "):
			styled = noteStyle.Sprint(line)
		case isSectionHeader(line):
			section = line
			styled = sectionStyle.Sprint(line)
		case strings.HasPrefix(line, "  • ") && section == "Broken Differential Pairs:":
			styled = brokenStyle.Sprint(line)
		case strings.HasPrefix(line, "  • ") && section == "Wiring Warnings:":
			styled = warningStyle.Sprint(line)
		}
		b.WriteString(styled)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func headlineStyle(c classify.Classification) *color.Color {
	switch {
	case c.Defective():
		return faultHeadline
	case c == classify.NonStandard, c == classify.ChargingIncomplete, c == classify.Unknown:
		return advisoryHeadline
	default:
		return healthyHeadline
	}
}

func isSectionHeader(line string) bool {
	switch line {
	case "Capabilities:", "Broken Differential Pairs:", "Wiring Warnings:", "Configuration:", "Checked Pins:":
		return true
	}
	return strings.HasPrefix(line, "SuperSpeed Lanes (")
}

func connectorOrUnknown(c pin.ConnectorType) string {
	if !c.Known() {
		return "Unknown"
	}
	return c.String()
}

// sortChecked orders checked-pin echoes by their leading position number;
// entries without one sort last in their original order.
func sortChecked(entries []string) []string {
	out := append([]string(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		return checkedKey(out[i]) < checkedKey(out[j])
	})
	return out
}

func checkedKey(entry string) int {
	fields := strings.Fields(entry)
	if len(fields) == 0 {
		return 999
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 999
	}
	return n
}
