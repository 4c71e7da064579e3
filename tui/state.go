// Package tui provides the primary terminal user interface implementation.
package tui

// state identifies the interaction mode the interface is currently in.
type state int

const (
	// browseState is the default scrolling mode covering all sections.
	browseState state = iota
	// gotoState is the fuzzy section prompt opened with the filter key.
	gotoState
)
