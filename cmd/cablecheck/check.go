package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags]",
	Short: "Interactively mark lit pins and watch the verdict",
	Long: `Open the interactive checker: walk both connector rows, toggle the pins
whose LEDs light up on the tester board, and read the live classification`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("ui", "auto", "interactive mode (auto|on|off)")
	checkCmd.Flags().String("board", "", "board profile TOML (defaults to the stock board)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	if !shouldUseTUI(mode) {
		return fmt.Errorf("interactive checker needs a terminal (use 'cablecheck analyze' for scripted runs)")
	}

	boardPath, err := cmd.Flags().GetString("board")
	if err != nil {
		return fmt.Errorf("failed to get board flag: %w", err)
	}
	profile, err := loadProfileFlag(boardPath)
	if err != nil {
		return err
	}

	return runCheckerUI(profile)
}
