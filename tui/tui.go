// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ledpal/ledpal/palette"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Repository *palette.Repository
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.session.Close()

	bubble.newState(palettesState)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}
