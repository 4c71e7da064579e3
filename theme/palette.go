package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a mode paints with. Names follow the
// catppuccin convention: mocha for dark, latte for light.
type Palette struct {
	Base    lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color
	Subtext lipgloss.Color
	Text    lipgloss.Color

	Rosewater lipgloss.Color
	Flamingo  lipgloss.Color
	Pink      lipgloss.Color
	Mauve     lipgloss.Color
	Red       lipgloss.Color
	Maroon    lipgloss.Color
	Peach     lipgloss.Color
	Yellow    lipgloss.Color
	Green     lipgloss.Color
	Teal      lipgloss.Color
	Sky       lipgloss.Color
	Sapphire  lipgloss.Color
	Blue      lipgloss.Color
	Lavender  lipgloss.Color
}

// Accent is the color used for the active dock item and headings.
func (p Palette) Accent() lipgloss.Color {
	return p.Mauve
}

// DarkPalette returns the mocha variant.
func DarkPalette() Palette {
	return Palette{
		Base:    lipgloss.Color("#1e1e2e"),
		Surface: lipgloss.Color("#313244"),
		Overlay: lipgloss.Color("#6c7086"),
		Subtext: lipgloss.Color("#a6adc8"),
		Text:    lipgloss.Color("#cdd6f4"),

		Rosewater: lipgloss.Color("#f5e0dc"),
		Flamingo:  lipgloss.Color("#f2cdcd"),
		Pink:      lipgloss.Color("#f5c2e7"),
		Mauve:     lipgloss.Color("#cba6f7"),
		Red:       lipgloss.Color("#f38ba8"),
		Maroon:    lipgloss.Color("#eba0ac"),
		Peach:     lipgloss.Color("#fab387"),
		Yellow:    lipgloss.Color("#f9e2af"),
		Green:     lipgloss.Color("#a6e3a1"),
		Teal:      lipgloss.Color("#94e2d5"),
		Sky:       lipgloss.Color("#89dceb"),
		Sapphire:  lipgloss.Color("#74c7ec"),
		Blue:      lipgloss.Color("#89b4fa"),
		Lavender:  lipgloss.Color("#b4befe"),
	}
}

// LightPalette returns the latte variant.
func LightPalette() Palette {
	return Palette{
		Base:    lipgloss.Color("#eff1f5"),
		Surface: lipgloss.Color("#ccd0da"),
		Overlay: lipgloss.Color("#9ca0b0"),
		Subtext: lipgloss.Color("#6c6f85"),
		Text:    lipgloss.Color("#4c4f69"),

		Rosewater: lipgloss.Color("#dc8a78"),
		Flamingo:  lipgloss.Color("#dd7878"),
		Pink:      lipgloss.Color("#ea76cb"),
		Mauve:     lipgloss.Color("#8839ef"),
		Red:       lipgloss.Color("#d20f39"),
		Maroon:    lipgloss.Color("#e64553"),
		Peach:     lipgloss.Color("#fe640b"),
		Yellow:    lipgloss.Color("#df8e1d"),
		Green:     lipgloss.Color("#40a02b"),
		Teal:      lipgloss.Color("#179299"),
		Sky:       lipgloss.Color("#04a5e5"),
		Sapphire:  lipgloss.Color("#209fb5"),
		Blue:      lipgloss.Color("#1e66f5"),
		Lavender:  lipgloss.Color("#7287fd"),
	}
}
