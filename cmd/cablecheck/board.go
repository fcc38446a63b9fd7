package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cablecheck/internal/pin"
)

var boardCmd = &cobra.Command{
	Use:   "board [profile.toml]",
	Short: "Show a board profile's pin mapping",
	Long: `Print the silkscreen-to-signal mapping of a tester board profile.
Without an argument the stock board is shown`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	profile, err := loadProfileFlag(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "board: %s\n", profile.Name)
	for _, side := range []pin.Side{pin.Left, pin.Right} {
		fmt.Fprintf(out, "\n%s\n", side.RowName())
		for _, pos := range pin.Layout(side) {
			signal, err := profile.Translate(side, pos.Label)
			if err != nil {
				return fmt.Errorf("%s side: %w", side, err)
			}
			marker := ""
			if pos.Label != signal.String() {
				marker = "  (remapped)"
			}
			fmt.Fprintf(out, "  %02d %-5s -> %s%s\n", pos.Index, pos.Label, signal, marker)
		}
	}
	return nil
}
