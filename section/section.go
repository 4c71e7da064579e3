// Package section defines the fixed, ordered registry of page sections that make up the portfolio.
package section

import (
	"github.com/p09s/folio/icon"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Section represents one named, anchorable region of the scrollable page.
type Section struct {
	ID    string
	Label string
	Icon  icon.Icon
}

// Registry is an immutable ordered collection of sections.
// It is defined once at application start and never mutated at runtime.
type Registry struct {
	sections []Section
	index    map[string]int
}

// NewRegistry builds a registry from the given sections, preserving order.
func NewRegistry(sections ...Section) Registry {
	index := make(map[string]int, len(sections))
	for i, s := range sections {
		if _, dup := index[s.ID]; dup {
			panic("duplicate section id: " + s.ID)
		}
		index[s.ID] = i
	}
	return Registry{sections: sections, index: index}
}

// All returns the sections in registry order.
func (r Registry) All() []Section {
	return r.sections
}

// Len returns the number of registered sections.
func (r Registry) Len() int {
	return len(r.sections)
}

// First returns the initial section of the registry.
func (r Registry) First() Section {
	return r.sections[0]
}

// Get retrieves a section by its identifier.
func (r Registry) Get(id string) mo.Option[Section] {
	i, ok := r.index[id]
	if !ok {
		return mo.None[Section]()
	}
	return mo.Some(r.sections[i])
}

// Contains reports whether the identifier names a registered section.
func (r Registry) Contains(id string) bool {
	_, ok := r.index[id]
	return ok
}

// IndexOf returns the position of a section within the registry, or -1 when unknown.
func (r Registry) IndexOf(id string) int {
	i, ok := r.index[id]
	if !ok {
		return -1
	}
	return i
}

// IDs returns the section identifiers in registry order.
func (r Registry) IDs() []string {
	return lo.Map(r.sections, func(s Section, _ int) string {
		return s.ID
	})
}

// Default returns the canonical portfolio registry.
func Default() Registry {
	return NewRegistry(
		Section{ID: "hero", Label: "Home", Icon: icon.Home},
		Section{ID: "work", Label: "Work", Icon: icon.Work},
		Section{ID: "journey", Label: "Journey", Icon: icon.Journey},
		Section{ID: "about", Label: "About", Icon: icon.About},
		Section{ID: "community", Label: "Community", Icon: icon.Community},
		Section{ID: "contact", Label: "Contact", Icon: icon.Contact},
	)
}
