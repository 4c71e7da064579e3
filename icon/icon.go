// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, or plain ASCII
// depending on user preference.
package icon

import (
	"github.com/p09s/folio/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji string
	nerd  string
	plain string
}

// Get retrieves the visual representation for the receiver def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return d.plain
	}
}

// Icon identifies a registered UI symbol.
type Icon int

const (
	Home Icon = iota
	Work
	Journey
	About
	Community
	Contact
	GitHub
	Linkedin
	Mail
	Sun
	Moon
	Copy
	Success
	Fail
	Progress
	Hint
	Location
	Clock
)

var icons = map[Icon]*iconDef{
	Home:      {emoji: "🏠", nerd: "", plain: "~"},
	Work:      {emoji: "💼", nerd: "", plain: "#"},
	Journey:   {emoji: "📍", nerd: "", plain: ">"},
	About:     {emoji: "👤", nerd: "", plain: "@"},
	Community: {emoji: "💜", nerd: "", plain: "+"},
	Contact:   {emoji: "✉️", nerd: "", plain: "*"},
	GitHub:    {emoji: "🐙", nerd: "", plain: "[gh]"},
	Linkedin:  {emoji: "💼", nerd: "", plain: "[in]"},
	Mail:      {emoji: "📧", nerd: "", plain: "[@]"},
	Sun:       {emoji: "☀️", nerd: "", plain: "(*)"},
	Moon:      {emoji: "🌙", nerd: "", plain: "( )"},
	Copy:      {emoji: "📋", nerd: "", plain: "[c]"},
	Success:   {emoji: "✅", nerd: "", plain: "+"},
	Fail:      {emoji: "❌", nerd: "", plain: "x"},
	Progress:  {emoji: "⏳", nerd: "", plain: "..."},
	Hint:      {emoji: "👇", nerd: "", plain: "v"},
	Location:  {emoji: "🌏", nerd: "", plain: "o"},
	Clock:     {emoji: "🕐", nerd: "", plain: "t"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
