// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/p09s/folio/log"
	"github.com/p09s/folio/open"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	b.notifier.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		if b.applyStartSection() {
			return b, frameTick()
		}
		return b, nil

	case frameMsg:
		b.stepScroll()
		if b.animating {
			return b, frameTick()
		}
		return b, nil

	case clockMsg:
		b.now = time.Time(msg)
		b.relayout()
		return b, clockTick()

	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case gotoState:
			return b.updateGoto(msg)
		default:
			return b.updateBrowse(msg)
		}
	}

	b.updateViewport(msg, &cmd)
	return b, cmd
}

// updateViewport hands a message to the viewport and, when it moved
// the scroll position, lets the manual movement take over from any
// in-flight animation.
func (b *statefulBubble) updateViewport(msg tea.Msg, cmd *tea.Cmd) {
	before := b.viewportC.YOffset
	b.viewportC, *cmd = b.viewportC.Update(msg)

	if b.viewportC.YOffset != before {
		b.syncScroll()
	} else {
		b.report()
	}
}

func (b *statefulBubble) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keymap := b.keymap

	switch {
	case bubblesKey.Matches(msg, keymap.quit):
		return b, tea.Quit

	case bubblesKey.Matches(msg, keymap.nextSection):
		b.gotoSection(b.neighborSection(1))
		return b, frameTick()

	case bubblesKey.Matches(msg, keymap.prevSection):
		b.gotoSection(b.neighborSection(-1))
		return b, frameTick()

	case bubblesKey.Matches(msg, keymap.jumpSection):
		ids := b.registry.IDs()
		if i := int(msg.String()[0] - '1'); i >= 0 && i < len(ids) {
			b.gotoSection(ids[i])
			return b, frameTick()
		}
		return b, nil

	case bubblesKey.Matches(msg, keymap.back):
		b.previousSection()
		return b, frameTick()

	case bubblesKey.Matches(msg, keymap.gotoPrompt):
		b.setState(gotoState)
		b.gotoC.SetValue("")
		return b, b.gotoC.Focus()

	case bubblesKey.Matches(msg, keymap.toggleTheme):
		mode := b.themes.Toggle()
		b.relayout()
		return b, b.notifier.Notify("theme: " + string(mode))

	case bubblesKey.Matches(msg, keymap.copyEmail):
		return b, b.copyEmail()

	case bubblesKey.Matches(msg, keymap.openSocial):
		return b, b.openSocial()

	case bubblesKey.Matches(msg, keymap.up):
		b.viewportC.ScrollUp(1)
		b.syncScroll()
		return b, nil

	case bubblesKey.Matches(msg, keymap.down):
		b.viewportC.ScrollDown(1)
		b.syncScroll()
		return b, nil

	case bubblesKey.Matches(msg, keymap.top):
		b.gotoSection(b.registry.First().ID)
		return b, frameTick()

	case bubblesKey.Matches(msg, keymap.bottom):
		ids := b.registry.IDs()
		b.gotoSection(ids[len(ids)-1])
		return b, frameTick()

	case bubblesKey.Matches(msg, keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return b, nil
	}

	var cmd tea.Cmd
	b.updateViewport(msg, &cmd)
	return b, cmd
}

func (b *statefulBubble) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case bubblesKey.Matches(msg, b.keymap.back):
		b.setState(browseState)
		b.gotoC.Blur()
		return b, nil

	case bubblesKey.Matches(msg, b.keymap.confirm):
		b.setState(browseState)
		b.gotoC.Blur()
		if id, ok := b.gotoSuggestion(); ok {
			b.gotoSection(id)
			return b, frameTick()
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.gotoC, cmd = b.gotoC.Update(msg)
	return b, cmd
}

// gotoSuggestion resolves the prompt input to the best matching section identifier.
func (b *statefulBubble) gotoSuggestion() (string, bool) {
	query := strings.TrimSpace(b.gotoC.Value())
	if query == "" {
		return "", false
	}

	ranks := fuzzy.RankFindFold(query, b.registry.IDs())
	if len(ranks) == 0 {
		return "", false
	}

	sort.Sort(ranks)
	return ranks[0].Target, true
}

// copyEmail places the contact address on the system clipboard. The
// confirmation is shown even when the clipboard is unavailable so the
// interaction always responds; the failure itself is only logged.
func (b *statefulBubble) copyEmail() tea.Cmd {
	email := b.payload.Profile.Email

	if err := clipboard.WriteAll(email); err != nil {
		log.Warnf("clipboard write failed: %v", err)
	}

	return b.notifier.Notify("copied " + email)
}

// openSocial opens the next social link, cycling through the list on
// repeated presses.
func (b *statefulBubble) openSocial() tea.Cmd {
	if len(b.payload.Socials) == 0 {
		return nil
	}

	social := b.payload.Socials[b.socialIndex%len(b.payload.Socials)]
	b.socialIndex++

	if err := open.Start(social.URL); err != nil {
		log.Warnf("opening %s failed: %v", social.URL, err)
		return b.notifier.Notify("could not open " + social.Name)
	}

	return b.notifier.Notify("opened " + social.Name)
}
