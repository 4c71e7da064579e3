// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/p09s/folio/icon"
	"github.com/p09s/folio/style"
	"github.com/p09s/folio/theme"
	"github.com/p09s/folio/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

// dockHeight is the number of lines the navigation dock occupies,
// including its separator.
func dockHeight(*statefulBubble) int {
	return 2
}

func (b *statefulBubble) View() string {
	palette := b.themes.Palette()

	var body string
	switch b.state {
	case gotoState:
		body = b.viewGoto(palette)
	default:
		body = b.viewportC.View()
	}

	output := strings.Join([]string{
		b.viewDock(palette),
		body,
		b.viewFooter(palette),
	}, "\n")

	return paddingStyle.Render(output)
}

// viewDock renders the persistent navigation bar. The active section is
// highlighted with the accent color; the highlight always reflects the
// state container, never the scroll position directly.
func (b *statefulBubble) viewDock(palette theme.Palette) string {
	items := make([]string, 0, b.registry.Len()+1)

	for _, s := range b.registry.All() {
		label := icon.Get(s.Icon) + " " + s.Label
		if s.ID == b.active.Get() {
			items = append(items, style.Tag(palette.Base, palette.Accent())(label))
		} else {
			items = append(items, style.Fg(palette.Subtext)(label))
		}
	}

	mode := icon.Get(icon.Sun)
	if b.themes.Mode() == theme.Dark {
		mode = icon.Get(icon.Moon)
	}
	items = append(items, style.Fg(palette.Overlay)(mode))

	dock := strings.Join(items, "  ")
	separator := style.Fg(palette.Surface)(strings.Repeat("─", util.Max(0, b.viewportC.Width)))

	return dock + "\n" + separator
}

func (b *statefulBubble) viewGoto(palette theme.Palette) string {
	lines := []string{
		style.Tag(palette.Base, palette.Accent())("Go to section"),
		"",
		b.gotoC.View(),
		"",
	}

	if suggestion, ok := b.gotoSuggestion(); ok {
		lines = append(lines, style.Faint("→ ")+style.Fg(palette.Accent())(suggestion))
	} else {
		lines = append(lines, style.Faint("no matching section"))
	}

	if pad := b.viewportC.Height - len(lines); pad > 0 {
		lines = append(lines, strings.Repeat("\n", pad-1))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) viewFooter(palette theme.Palette) string {
	if b.notifier.Active() {
		return style.Fg(palette.Green)(icon.Get(icon.Success) + " " + b.notifier.Message())
	}
	return b.helpC.View(b.keymap)
}
