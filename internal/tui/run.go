package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/todo"
)

// Run starts the interactive program seeded with the given state and blocks
// until the user quits. State is in-memory only; nothing survives the
// session.
func Run(initial todo.State) error {
	p := tea.NewProgram(New(initial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
