package window

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/npillmayer/canopy/pipeline"
)

// Run starts the terminal window's event loop, blocking the calling
// goroutine until the user quits. Must be called from the process's
// main goroutine, per spec.md's external-collaborator contract —
// bubbletea's Program.Run enforces this itself.
func Run(pipe *pipeline.Pipeline) error {
	program := tea.NewProgram(New(pipe), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return &InitError{Cause: err}
	}
	return nil
}
