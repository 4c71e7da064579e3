// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/p09s/folio/theme"
	"github.com/samber/mo"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Theme overrides the persisted and ambient mode resolution.
	Theme mo.Option[theme.Mode]
	// StartSection is the identifier of the section shown first.
	StartSection mo.Option[string]
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)
	defer bubble.observer.Close()

	// The jump is deferred until layout geometry exists; Init or the
	// first window size message consumes it.
	bubble.startSection = options.StartSection

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
