// Package nav implements the scroll-synchronized navigation core: the
// active-section state container and the viewport visibility observer.
package nav

import (
	"fmt"

	"github.com/p09s/folio/log"
	"github.com/p09s/folio/section"
)

// State is the single source of truth for which section is highlighted
// in the navigation dock right now.
//
// It is owned by the top-level application composition and passed down
// by reference. All writes happen on the UI dispatch loop, so no
// locking is required; the latest write always wins.
type State struct {
	registry section.Registry
	active   string
}

// NewState returns a state container initialized to the first registry section.
func NewState(registry section.Registry) *State {
	return &State{
		registry: registry,
		active:   registry.First().ID,
	}
}

// Set unconditionally overwrites the active section.
// Unknown identifiers are rejected with a diagnostic instead of being
// silently accepted; the previous value is retained.
func (s *State) Set(id string) error {
	if !s.registry.Contains(id) {
		log.Warnf("nav: rejected unknown section id %q", id)
		return fmt.Errorf("unknown section id: %s", id)
	}
	s.active = id
	return nil
}

// Get returns the identifier of the currently active section.
func (s *State) Get() string {
	return s.active
}
