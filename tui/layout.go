// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"strings"

	"github.com/p09s/folio/key"
	"github.com/p09s/folio/theme"
	"github.com/p09s/folio/util"
	"github.com/spf13/viper"
)

// relayout rebuilds the scrollable document, records each section's
// line extent and re-registers the geometry with the visibility
// observer. Called on resize and on theme change.
func (b *statefulBubble) relayout() {
	if b.viewportC.Width <= 0 || b.viewportC.Height <= 0 {
		return
	}

	gap := util.Max(0, viper.GetInt(key.TUISectionGap))
	palette := b.themes.Palette()

	blocks := make([]string, 0, b.registry.Len())
	top := 0

	for _, s := range b.registry.All() {
		block := b.renderSection(s.ID, palette)

		// Every section fills at least one screen so a jump lands on
		// a clean page.
		lines := strings.Count(block, "\n") + 1
		if pad := b.viewportC.Height - lines; pad > 0 {
			block += strings.Repeat("\n", pad)
			lines = b.viewportC.Height
		}

		b.extents[s.ID] = extent{top: top, height: lines}
		b.observer.Track(s.ID, top, lines)

		top += lines + gap
		blocks = append(blocks, block)
	}

	b.viewportC.SetContent(strings.Join(blocks, strings.Repeat("\n", gap+1)))

	// Clamp the scroll offset into the rebuilt document.
	if b.viewportC.YOffset > b.maxOffset() {
		b.viewportC.SetYOffset(b.maxOffset())
		b.scrollPos = float64(b.viewportC.YOffset)
		b.targetOffset = util.Min(b.targetOffset, b.maxOffset())
	}

	b.report()
}

func (b *statefulBubble) renderSection(id string, palette theme.Palette) string {
	switch id {
	case "hero":
		return b.renderHero(palette)
	case "work":
		return b.renderWork(palette)
	case "journey":
		return b.renderJourney(palette)
	case "about":
		return b.renderAbout(palette)
	case "community":
		return b.renderCommunity(palette)
	case "contact":
		return b.renderContact(palette)
	default:
		return ""
	}
}
