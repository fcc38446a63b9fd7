package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cablecheck/internal/board"
	"cablecheck/internal/ui"
)

func runCheckerUI(profile *board.Profile) error {
	model := ui.New(profile)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err := program.Run()
	return err
}
