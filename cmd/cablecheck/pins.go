package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cablecheck/internal/board"
	"cablecheck/internal/pin"
)

var pinsCmd = &cobra.Command{
	Use:   "pins [flags]",
	Short: "List tester board pin positions and their signals",
	Long: `Print the pin reference for the stock tester board: position, silkscreen
label, logical signal, signal group, and what the signal does`,
	Args: cobra.NoArgs,
	RunE: runPins,
}

func init() {
	pinsCmd.Flags().String("side", "", "limit output to one row (left|right)")
}

func runPins(cmd *cobra.Command, _ []string) error {
	sideFlag, err := cmd.Flags().GetString("side")
	if err != nil {
		return fmt.Errorf("failed to get side flag: %w", err)
	}

	sides := []pin.Side{pin.Left, pin.Right}
	if sideFlag != "" {
		side, ok := pin.ParseSide(sideFlag)
		if !ok {
			return fmt.Errorf("invalid --side value %q (expected left|right)", sideFlag)
		}
		sides = []pin.Side{side}
	}

	profile := board.Default()
	out := cmd.OutOrStdout()
	for i, side := range sides {
		if i > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "%s\n", side.RowName())
		for _, pos := range pin.Layout(side) {
			signal, err := profile.Translate(side, pos.Label)
			if err != nil {
				return fmt.Errorf("%s side: %w", side, err)
			}
			fmt.Fprintf(out, "  %02d %-5s %-5s %-9s %s\n",
				pos.Index, pos.Label, signal, signalGroup(signal), signal.Description())
		}
	}
	return nil
}

// signalGroup names the functional group a signal belongs to, for the pins
// listing.
func signalGroup(p pin.Pin) string {
	switch {
	case p == pin.GND || p == pin.VBus:
		return "power"
	case pin.USB2Pair.Has(p):
		return "usb2"
	case pin.CCPins.Has(p):
		return "config"
	case pin.SBUPins.Has(p):
		return "sideband"
	case pin.Lane1.Has(p):
		return "lane 1"
	case pin.Lane2.Has(p):
		return "lane 2"
	}
	return "other"
}
