// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives one step of the spring scroll animation.
type frameMsg struct{}

// clockMsg refreshes the live clock shown in the hero section.
type clockMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (b *statefulBubble) Init() tea.Cmd {
	b.report()
	b.applyStartSection()

	// A pending jump needs its first frame here; key handlers only
	// schedule frames for the animations they start themselves.
	if b.animating {
		return tea.Batch(clockTick(), frameTick())
	}
	return clockTick()
}
