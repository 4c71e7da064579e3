// Package ui holds small view-model helpers shared by the interface.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// NotifyDuration is how long a transient notification stays visible.
const NotifyDuration = 2 * time.Second

// Notifier is a transient one-line status display. Each Notify call
// restarts the visibility window; expiry messages from superseded
// windows are recognized by generation and dropped, so a re-triggered
// notification always gets its full duration.
type Notifier struct {
	message    string
	generation int
}

type notifyExpiredMsg struct {
	generation int
}

// Notify shows a message and returns the command that will expire it.
func (n *Notifier) Notify(message string) tea.Cmd {
	n.message = message
	n.generation++

	generation := n.generation
	return tea.Tick(NotifyDuration, func(time.Time) tea.Msg {
		return notifyExpiredMsg{generation: generation}
	})
}

// Update consumes expiry messages. Anything else is ignored.
func (n *Notifier) Update(msg tea.Msg) {
	if expired, ok := msg.(notifyExpiredMsg); ok && expired.generation == n.generation {
		n.message = ""
	}
}

// Message returns the currently visible message, empty when idle.
func (n *Notifier) Message() string {
	return n.message
}

// Active reports whether a notification is on screen.
func (n *Notifier) Active() bool {
	return n.message != ""
}
