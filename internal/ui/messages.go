package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/cloctop/internal/cloc"
)

// Common message types shared across the UI
type scanCompleteMsg struct {
	output *cloc.Output
}

type scanErrorMsg struct {
	err error
}

type tickMsg time.Time

var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// createScanCommand creates a tea command that runs cloc against the path
func createScanCommand(runner *cloc.Runner) tea.Cmd {
	return func() tea.Msg {
		output, err := runner.Run(context.Background())
		if err != nil {
			return scanErrorMsg{err: err}
		}
		return scanCompleteMsg{output: output}
	}
}
