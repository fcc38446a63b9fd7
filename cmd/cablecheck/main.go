package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cablecheck/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cablecheck",
	Short: "USB cable tester board companion",
	Long:  `cablecheck classifies USB cable wiring from LED tester board observations`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(pinsCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
